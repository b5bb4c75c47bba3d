// internal/routes/router.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hrms_backend/internal/handlers"
	"hrms_backend/internal/storage"
)

func NewRouter(store storage.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	systemH := handlers.NewSystemHandler(store)
	authH := handlers.NewAuthHandler(store)
	userH := handlers.NewUserHandler(store)
	attendanceH := handlers.NewAttendanceHandler(store)
	leaveH := handlers.NewLeaveHandler(store)
	payrollH := handlers.NewPayrollHandler(store)
	statsH := handlers.NewStatsHandler(store)

	api := r.Group("/api")
	{
		api.GET("/init", systemH.Init)
		api.POST("/register", authH.Register)
		api.POST("/login", authH.Login)
		api.GET("/users", userH.List)
		api.GET("/employees", userH.List)
		api.PUT("/users/:id", userH.Update)
		api.GET("/attendance", attendanceH.List)
		api.POST("/attendance", attendanceH.Save)
		api.GET("/leaves", leaveH.List)
		api.POST("/leaves", leaveH.Create)
		api.PUT("/leaves/:id", leaveH.Update)
		api.GET("/payroll", payrollH.List)
		api.GET("/stats", statsH.Stats)
		api.GET("/analytics/happiness", statsH.Happiness)
	}

	r.GET("/healthz", handlers.Health)

	return r
}
