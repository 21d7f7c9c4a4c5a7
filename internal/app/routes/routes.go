package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feliperb/gympoint/internal/app/controllers"
	"github.com/feliperb/gympoint/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	sessionController *controllers.SessionController,
	studentController *controllers.StudentController,
	planController *controllers.PlanController,
	enrollmentController *controllers.EnrollmentController,
	checkinController *controllers.CheckinController,
	helpOrderController *controllers.HelpOrderController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/users", userController.Store)
	router.POST("/sessions", sessionController.Store)

	// Student-facing routes, reachable from the gym kiosk without a token
	router.GET("/students/:student_id/checkins", checkinController.Index)
	router.POST("/students/:student_id/checkins", checkinController.Store)
	router.POST("/students/:student_id/help-orders", helpOrderController.Store)

	// --- Administrative routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// The whole /students subtree shares the :student_id param name,
		// gin rejects conflicting wildcard names on a common prefix
		authenticated.POST("/students", studentController.Store)
		authenticated.PUT("/students/:student_id", studentController.Update)
		authenticated.GET("/students/:student_id/help-orders", helpOrderController.IndexByStudent)

		plans := authenticated.Group("/plans")
		{
			plans.GET("", planController.Index)
			plans.GET("/:id", planController.Show)
			plans.POST("", planController.Store)
			// Plan updates carry the target id in the body
			plans.PUT("", planController.Update)
			plans.DELETE("/:id", planController.Delete)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.Index)
			enrollments.GET("/:id", enrollmentController.Show)
			// Enrollment creation takes the student id in the path
			enrollments.POST("/:id", enrollmentController.Store)
			enrollments.PUT("/:id", enrollmentController.Update)
			enrollments.DELETE("/:id", enrollmentController.Delete)
		}

		helpOrders := authenticated.Group("/help-orders")
		{
			helpOrders.GET("", helpOrderController.Index)
			helpOrders.POST("/:id/answer", helpOrderController.Answer)
		}
	}
}
