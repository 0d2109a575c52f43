package handlers

import (
	"taskmanager/internal/logger"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints: registration, login, user listing
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/users", h.listUsers)

	// Task endpoints (protected)
	h.registerTaskRoutes(router)

	// Live task-event feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerTaskRoutes(r *gin.Engine) {
	protected := r.Group("/", h.userIdMiddleware)
	{
		tasks := protected.Group("/tasks")
		{
			tasks.POST("", h.createTask)
			tasks.GET("", h.listTasks)
			tasks.GET("/:id", h.getTask)
			tasks.PUT("/:id", h.updateTask)
			tasks.DELETE("/:id", h.deleteTask)
		}
		protected.GET("/activity", h.getActivity)
	}
}
