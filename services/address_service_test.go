package services

import (
	"testing"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressUpdateInsideRadius(t *testing.T) {
	db := newTestDB(t)
	srv := newDirectionsServer(t, 10000, 900)
	userRepo := repository.NewUserRepository(db)
	svc := NewAddressService(userRepo, NewDeliveryService(srv.URL, "test-key", "origin"))

	user := newTestUser(t, db, "jacob@example.com")
	addr := &entity.Address{Street1: "500 Gulf Shore Blvd", City: "Naples", State: "FL", ZipCode: "34102"}
	require.NoError(t, svc.Update(user.ID, addr))

	got, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Naples", got.Address.City)
}

func TestAddressUpdateOutsideRadiusNotSaved(t *testing.T) {
	db := newTestDB(t)
	srv := newDirectionsServer(t, MaxDeliveryDistance+500, 3600)
	userRepo := repository.NewUserRepository(db)
	svc := NewAddressService(userRepo, NewDeliveryService(srv.URL, "test-key", "origin"))

	user := newTestUser(t, db, "jacob@example.com")
	addr := &entity.Address{Street1: "1 Far Away Ln", City: "Miami", State: "FL", ZipCode: "33101"}
	assert.ErrorIs(t, svc.Update(user.ID, addr), ErrAddressOutOfRange)

	got, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Address)
}

func TestAddressUpdateReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	srv := newDirectionsServer(t, 10000, 900)
	userRepo := repository.NewUserRepository(db)
	svc := NewAddressService(userRepo, NewDeliveryService(srv.URL, "test-key", "origin"))

	user := newTestUser(t, db, "jacob@example.com")
	require.NoError(t, svc.Update(user.ID, &entity.Address{Street1: "500 Gulf Shore Blvd", City: "Naples", State: "FL", ZipCode: "34102"}))
	require.NoError(t, svc.Update(user.ID, &entity.Address{Street1: "800 5th Ave S", City: "Naples", State: "FL", ZipCode: "34102"}))

	got, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "800 5th Ave S", got.Address.Street1)

	// still a single address row
	var count int64
	require.NoError(t, db.Model(&entity.Address{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddressOneLine(t *testing.T) {
	addr := entity.Address{Street1: "500 Gulf Shore Blvd", Street2: "Apt 2", City: "Naples", State: "FL", ZipCode: "34102"}
	assert.Equal(t, "500 Gulf Shore Blvd, Apt 2, Naples, FL 34102", addr.OneLine())

	noStreet2 := entity.Address{Street1: "500 Gulf Shore Blvd", City: "Naples", State: "FL", ZipCode: "34102"}
	assert.Equal(t, "500 Gulf Shore Blvd, Naples, FL 34102", noStreet2.OneLine())
}
