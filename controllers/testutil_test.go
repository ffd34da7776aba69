package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ja-cob-s/cantina/configs"
	"github.com/ja-cob-s/cantina/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
}

func testTTL() time.Duration { return time.Hour }

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

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
