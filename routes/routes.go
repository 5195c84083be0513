package routes

import (
	"laptopstore/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/register-admin", controllers.RegisterAdmin)
			auth.POST("/login", controllers.Login)
			auth.GET("/check-admin", controllers.CheckAdmin)

			// Admin-only; caller identity re-proven per request via ?username=.
			auth.GET("/users", controllers.ListUsers)
			auth.POST("/users", controllers.CreateUser)
			auth.PUT("/users/:id", controllers.UpdateUser)
			auth.DELETE("/users/:id", controllers.DeleteUser)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", controllers.ListCategories)
			categories.GET("/:id", controllers.GetCategory)
			categories.POST("", controllers.CreateCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", controllers.ListProducts)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", controllers.CreateProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		carts := api.Group("/carts")
		{
			carts.GET("/:userId", controllers.GetCart)
			carts.POST("/:userId", controllers.AddToCart)
			carts.PUT("/:userId", controllers.UpdateCartItem)
			carts.DELETE("/:userId", controllers.ClearCart)
			carts.DELETE("/:userId/:productId", controllers.RemoveFromCart)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", controllers.ListOrders)
			orders.GET("/user/:userId", controllers.ListUserOrders)
			orders.POST("", controllers.CreateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}
	}
}
