package routes

import (
	"github.com/TAMUSHPE/MobileApp-sub002/controllers"
	"github.com/TAMUSHPE/MobileApp-sub002/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.POST("/login", controllers.Login)
	router.POST("/register", controllers.Register)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/refresh", controllers.RefreshToken)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/", controllers.GetUsers)
		userRoutes.GET("/:id", controllers.GetUserByID)
		userRoutes.PUT("/:id", middleware.OwnershipMiddleware(), controllers.UpdateUser)
		userRoutes.PUT("/:id/role", middleware.AdminOnlyMiddleware(), controllers.SetUserRole)
		userRoutes.DELETE("/:id", middleware.AdminOnlyMiddleware(), controllers.DeleteUser)
	}

	eventRoutes := router.Group("/events")
	eventRoutes.Use(middleware.AuthMiddleware())
	{
		eventRoutes.GET("/", controllers.GetEvents)
		eventRoutes.POST("/", middleware.StaffOnlyMiddleware(), controllers.CreateEvent)
		eventRoutes.GET("/:eventId", controllers.GetEvent)
		eventRoutes.PUT("/:eventId", middleware.StaffOnlyMiddleware(), controllers.UpdateEvent)
		eventRoutes.DELETE("/:eventId", middleware.AdminOnlyMiddleware(), controllers.DeleteEvent)
		eventRoutes.GET("/:eventId/qr", middleware.StaffOnlyMiddleware(), controllers.GetEventScanURIs)
		eventRoutes.GET("/:eventId/attendance", middleware.StaffOnlyMiddleware(), controllers.GetEventAttendance)
		eventRoutes.PUT("/:eventId/attendance/:userId", middleware.StaffOnlyMiddleware(), controllers.VerifyAttendance)
	}

	attendanceRoutes := router.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthMiddleware())
	{
		attendanceRoutes.POST("/scan", controllers.ScanAttendance)
		attendanceRoutes.GET("/me", controllers.GetMyAttendance)
	}
}
