// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coursebridge/config"
	"coursebridge/internal/delivery/http/middleware"
	"coursebridge/internal/delivery/http/router/handler"
	"coursebridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Cfg                  *config.Config
	HealthHandler        *handler.HealthHandler
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	CourseRequestHandler *handler.CourseRequestHandler
	CourseHandler        *handler.CourseHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                  *config.Config
	healthHandler        *handler.HealthHandler
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	courseRequestHandler *handler.CourseRequestHandler
	courseHandler        *handler.CourseHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                  params.Cfg,
		healthHandler:        params.HealthHandler,
		authHandler:          params.AuthHandler,
		userHandler:          params.UserHandler,
		courseRequestHandler: params.CourseRequestHandler,
		courseHandler:        params.CourseHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role gates list the roles that unlock a group; admin passes every gate.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health endpoints, unauthenticated.
	e.GET("/health", r.healthHandler.Check)
	e.GET("/health/simple", r.healthHandler.CheckSimple)

	// Public auth routes. Refresh and logout authenticate through the
	// refresh token in the body, not the access token header.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// The authenticated user's own account.
	meGroup := e.Group("/auth/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.authHandler.GetProfile)
		meGroup.PUT("", r.authHandler.UpdateProfile)
		meGroup.PUT("/password", r.authHandler.ChangePassword)
	}

	// The authenticated user's live sessions.
	sessionGroup := e.Group("/auth/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.authHandler.GetActiveSessions)
		sessionGroup.DELETE("", r.authHandler.LogoutAllDevices)
		sessionGroup.DELETE("/:id", r.authHandler.RevokeSession)
	}

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	// User management is admin-only.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.PUT("/:id/roles", r.userHandler.AssignRoles)
		userGroup.POST("/:id/activate", r.userHandler.ActivateUser)
		userGroup.POST("/:id/deactivate", r.userHandler.DeactivateUser)
	}

	// Sales own the course request intake.
	salesGroup := api.Group("/sales/requests")
	salesGroup.Use(r.authMiddleware.RequireRole(entity.RoleSales))
	{
		salesGroup.POST("", r.courseRequestHandler.CreateRequest)
		salesGroup.GET("", r.courseRequestHandler.ListRequests)
		salesGroup.GET("/:id", r.courseRequestHandler.GetRequest)
		salesGroup.PUT("/:id", r.courseRequestHandler.UpdateRequest)
		salesGroup.DELETE("/:id", r.courseRequestHandler.DeleteRequest)
		salesGroup.POST("/:id/submit", r.courseRequestHandler.SubmitRequest)
		salesGroup.POST("/:id/cancel", r.courseRequestHandler.CancelRequest)
		salesGroup.POST("/:id/documents", r.courseRequestHandler.AttachDocument)
		salesGroup.GET("/:id/documents", r.courseRequestHandler.ListDocuments)
		salesGroup.GET("/:id/documents/:docId/download", r.courseRequestHandler.DownloadDocument)
		salesGroup.DELETE("/:id/documents/:docId", r.courseRequestHandler.DeleteDocument)
		salesGroup.POST("/:id/feedback", r.courseRequestHandler.AddFeedback)
		salesGroup.GET("/:id/feedback", r.courseRequestHandler.ListFeedback)
	}

	// Course managers pull submitted requests through production.
	requestProcessingGroup := api.Group("/sales/requests")
	requestProcessingGroup.Use(r.authMiddleware.RequireRole(entity.RoleCourseManager))
	{
		requestProcessingGroup.POST("/:id/start", r.courseRequestHandler.StartProcessing)
		requestProcessingGroup.POST("/:id/complete", r.courseRequestHandler.CompleteRequest)
	}

	// Course catalog reads are open to trainers as well.
	courseReadGroup := api.Group("/courses")
	courseReadGroup.Use(r.authMiddleware.RequireRole(entity.RoleTrainer, entity.RoleCourseManager))
	{
		courseReadGroup.GET("", r.courseHandler.ListCourses)
		courseReadGroup.GET("/:id", r.courseHandler.GetCourse)
		courseReadGroup.GET("/:id/reviews", r.courseHandler.ListReviews)
		courseReadGroup.GET("/:id/modules", r.courseHandler.ListModules)
	}

	// Content authoring belongs to course managers.
	courseWriteGroup := api.Group("/courses")
	courseWriteGroup.Use(r.authMiddleware.RequireRole(entity.RoleCourseManager))
	{
		courseWriteGroup.POST("", r.courseHandler.CreateCourse)
		courseWriteGroup.PUT("/:id", r.courseHandler.UpdateCourse)
		courseWriteGroup.DELETE("/:id", r.courseHandler.DeleteCourse)
		courseWriteGroup.POST("/:id/submit", r.courseHandler.SubmitForReview)
		courseWriteGroup.POST("/:id/modules", r.courseHandler.CreateModule)
		courseWriteGroup.PUT("/:id/modules/:moduleId", r.courseHandler.UpdateModule)
		courseWriteGroup.DELETE("/:id/modules/:moduleId", r.courseHandler.DeleteModule)
		courseWriteGroup.POST("/:id/assessments", r.courseHandler.CreateAssessment)
	}

	// Review decisions are the admin's call.
	courseApprovalGroup := api.Group("/courses")
	courseApprovalGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		courseApprovalGroup.POST("/:id/approve", r.courseHandler.ApproveCourse)
		courseApprovalGroup.POST("/:id/reject", r.courseHandler.RejectCourse)
	}

	// Nested content addressed by its own ID.
	contentGroup := api.Group("")
	contentGroup.Use(r.authMiddleware.RequireRole(entity.RoleCourseManager))
	{
		contentGroup.POST("/modules/:id/lessons", r.courseHandler.CreateLesson)
		contentGroup.PUT("/lessons/:id", r.courseHandler.UpdateLesson)
		contentGroup.DELETE("/lessons/:id", r.courseHandler.DeleteLesson)
		contentGroup.POST("/lessons/:id/exercises", r.courseHandler.CreateExercise)
		contentGroup.PUT("/exercises/:id", r.courseHandler.UpdateExercise)
		contentGroup.DELETE("/exercises/:id", r.courseHandler.DeleteExercise)
		contentGroup.PUT("/assessments/:id", r.courseHandler.UpdateAssessment)
		contentGroup.DELETE("/assessments/:id", r.courseHandler.DeleteAssessment)
	}

	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		r.registerTestRoutes(e)
	}
}

// registerTestRoutes mounts the develop-only middleware probes.
func (r *router) registerTestRoutes(e *echo.Echo) {
	testHandler := handler.NewTestHandler()

	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", testHandler.Ping)
		testGroup.GET("/whoami", testHandler.WhoAmI, r.authMiddleware.Authenticate)
	}
}
