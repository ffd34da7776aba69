package routes

import (
	"github.com/ja-cob-s/cantina/configs"
	"github.com/ja-cob-s/cantina/controllers"
	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/ja-cob-s/cantina/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dashRepo := repository.NewDashboardRepository(db)

	// Services
	deliverySvc := services.NewDeliveryService(cfg.MapsBaseURL, cfg.MapsAPIKey, cfg.RestaurantAddress)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	addressSvc := services.NewAddressService(userRepo, deliverySvc)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, deliverySvc)
	dashSvc := services.NewDashboardService(dashRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, addressSvc, deliverySvc, authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret, false)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, true)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/logout", authCtrl.Logout)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Menu (public)
	r.GET("/menu", menuCtrl.Show)
	r.GET("/menu/json", menuCtrl.ListJSON)
	r.GET("/menu/:id/json", menuCtrl.ItemJSON)

	// Cart (customer)
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.Show)
		cart.POST("/items/:menuId", cartCtrl.Add)
		cart.PATCH("/items/:menuId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:menuId", cartCtrl.Remove)
		cart.PUT("/address", cartCtrl.UpdateAddress)
		cart.POST("/checkout", orderCtrl.Checkout)
	}

	// Order history
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.GET("/dashboard", dashCtrl.Show)
	}
}
