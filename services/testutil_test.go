package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ja-cob-s/cantina/configs"
	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named shared-cache DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Address{}, &entity.User{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	require.NoError(t, configs.CreateViews(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Name: "Test User", Email: email, Password: string(hash)}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newTestItem(t *testing.T, db *gorm.DB, name, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Course: "Entree", Price: price}
	require.NoError(t, db.Create(m).Error)
	return m
}

// newDirectionsServer fakes the directions API with a fixed route leg.
func newDirectionsServer(t *testing.T, distanceMeters, durationSeconds int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"OK","routes":[{"legs":[{"distance":{"value":%d},"duration":{"value":%d}}]}]}`,
			distanceMeters, durationSeconds)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}
