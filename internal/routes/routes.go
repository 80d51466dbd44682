package routes

import (
	"github.com/Gnyfrt/miracotoelektronik/internal/handler"
	"github.com/Gnyfrt/miracotoelektronik/internal/middleware"
	"github.com/Gnyfrt/miracotoelektronik/internal/store"

	"github.com/gin-gonic/gin"
)

// Register wires every handler onto the engine. All admin pages sit behind
// the login gate; only the login form itself is open.
func Register(r *gin.Engine, st *store.Store, logoDir string) {
	authHandler := &handler.AuthHandler{Store: st}
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	dashboardHandler := &handler.DashboardHandler{Store: st}
	brandHandler := &handler.BrandHandler{Store: st, LogoDir: logoDir}
	stockHandler := &handler.StockHandler{Store: st}
	priceHandler := &handler.PriceHandler{Store: st}
	adminHandler := &handler.AdminHandler{Store: st}

	protected := r.Group("/")
	protected.Use(middleware.LoginRequired())
	{
		protected.GET("/", dashboardHandler.Index)

		protected.GET("/brands", brandHandler.List)
		protected.POST("/brands", brandHandler.Create)
		protected.POST("/brands/:id/delete", brandHandler.Delete)
		protected.POST("/brands/:id/keytypes", brandHandler.AddKeyType)
		protected.POST("/brands/:id/logo", brandHandler.UploadLogo)
		protected.POST("/keytypes/:id/delete", brandHandler.DeleteKeyType)

		protected.GET("/stock", stockHandler.List)
		protected.POST("/stock", stockHandler.Add)
		protected.POST("/stock/withdraw/:id", stockHandler.Withdraw)

		protected.GET("/prices", priceHandler.List)
		protected.POST("/keytypes/:id/price", priceHandler.Update)
		protected.GET("/keytypes/:id/history", priceHandler.History)
		protected.GET("/keytypes/:id/chart.json", priceHandler.ChartData)

		protected.GET("/users", adminHandler.ListUsers)
		protected.POST("/users", adminHandler.CreateUser)
		protected.POST("/users/:id/delete", adminHandler.DeleteUser)
	}
}
