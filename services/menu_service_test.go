package services

import (
	"testing"

	"github.com/ja-cob-s/cantina/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuUpdateSkipsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	item, err := svc.Create("Flan", "Dessert", "Classic caramel custard", "5.00")
	require.NoError(t, err)

	got, err := svc.Update(item.ID, "", "", "", "5.50")
	require.NoError(t, err)
	assert.Equal(t, "Flan", got.Name)
	assert.Equal(t, "Dessert", got.Course)
	assert.Equal(t, "Classic caramel custard", got.Description)
	assert.Equal(t, "5.50", got.Price)
}

func TestMenuUpdateOverwritesSubmittedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	item, err := svc.Create("Flan", "Dessert", "Classic caramel custard", "5.00")
	require.NoError(t, err)

	got, err := svc.Update(item.ID, "Tres Leches", "Dessert", "Milk cake", "6.00")
	require.NoError(t, err)
	assert.Equal(t, "Tres Leches", got.Name)
	assert.Equal(t, "Milk cake", got.Description)
	assert.Equal(t, "6.00", got.Price)
}

func TestMenuUpdateUnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	_, err := svc.Update(42, "Nope", "", "", "")
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	item, err := svc.Create("Flan", "Dessert", "", "5.00")
	require.NoError(t, err)

	deleted, err := svc.Delete(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flan", deleted.Name)

	_, err = svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
