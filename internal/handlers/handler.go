package handlers

import (
	"taskboard/internal/logger"
	"taskboard/internal/service"

	"github.com/gin-contrib/cors"
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
	router.Use(cors.New(corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerUserRoutes(router)
	h.registerTaskRoutes(router)

	return router
}

// corsConfig allows the browser client to send the Authorization header
// from any origin.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("Authorization")
	cfg.AddAllowMethods("PATCH", "DELETE")
	return cfg
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/signup", h.signUp)
		user.POST("/signin", h.signIn)
		user.GET("/info", h.userIdMiddleware, h.userInfo)
	}
}

func (h *Handler) registerTaskRoutes(r *gin.Engine) {
	task := r.Group("/task", h.userIdMiddleware)
	{
		task.POST("/create", h.createTask)
		task.GET("/all", h.listTasks)
		task.PATCH("/update", h.updateTask)
		task.PATCH("/update-status", h.updateTaskStatus)
		task.DELETE("/delete", h.deleteTask)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
