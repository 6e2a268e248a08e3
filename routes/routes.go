package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/repository"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Repos    *repository.Repositories
	Identity controllers.IdentityProvider
}

func Register(r *gin.Engine, deps Deps) {
	repos := deps.Repos

	auth := controllers.NewAuthController(repos.Users, repos.Sessions, deps.Identity)
	products := controllers.NewProductController(repos.Products)
	categories := controllers.NewCategoryController(repos.Categories)
	cart := controllers.NewCartController(repos.Cart, repos.Products)
	orders := controllers.NewOrderController(repos.Orders, repos.Cart)
	promos := controllers.NewPromoController(repos.PromoCodes)
	admin := controllers.NewAdminController(repos.Products, repos.Categories, repos.Orders, repos.Users, repos.PromoCodes)

	api := r.Group("/api")
	{
		api.POST("/auth/session", auth.CreateSession)

		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)

		api.GET("/categories", categories.List)
		api.POST("/categories", categories.Create)

		api.GET("/promo-codes/:code", promos.Validate)
		api.POST("/promo-codes", promos.Create)

		api.GET("/admin/dashboard", admin.Dashboard)
		api.POST("/admin/init-sample-data", admin.InitSampleData)

		protected := api.Group("/")
		protected.Use(middleware.Auth(repos.Sessions, repos.Users))
		{
			protected.GET("/auth/profile", auth.Profile)

			protected.GET("/cart", cart.List)
			protected.POST("/cart", cart.Add)
			protected.PUT("/cart/:id", cart.Update)
			protected.DELETE("/cart/:id", cart.Remove)

			protected.GET("/orders", orders.List)
			protected.POST("/orders", orders.Create)
			protected.GET("/orders/:id", orders.Get)
		}
	}
}
