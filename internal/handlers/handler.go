package handlers

import (
	"net/http"
	"time"

	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	registerValidators()
	return &Handler{services: services, log: log, streamInterval: defaultInterval}
}

// WithStreamInterval sets the push interval used by /api/ws when the client does not ask for one.
func (h *Handler) WithStreamInterval(d time.Duration) *Handler {
	if d > 0 && d <= maxInterval {
		h.streamInterval = d
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.identityMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.GET("/hello", h.hello)
		h.registerAuthRoutes(api)
	}

	protected := router.Group("/api", h.requireIdentity)
	{
		h.registerCategoryRoutes(protected)
		h.registerTransactionRoutes(protected)
		protected.GET("/activity", h.getActivity)
		protected.GET("/ws", h.wsConnect)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/type/:type", h.listCategoriesByType)
		categories.GET("/:id", h.getCategory)
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

func (h *Handler) registerTransactionRoutes(api *gin.RouterGroup) {
	tx := api.Group("/transactions")
	{
		tx.GET("", h.listTransactions)
		tx.GET("/type/:type", h.listTransactionsByType)
		tx.GET("/category/:categoryId", h.listTransactionsByCategory)
		tx.GET("/date-range", h.listTransactionsByDateRange)
		tx.GET("/:id", h.getTransaction)
		tx.POST("", h.createTransaction)
		tx.PUT("/:id", h.updateTransaction)
		tx.DELETE("/:id", h.deleteTransaction)

		tx.GET("/summary", h.getOverview)
		tx.GET("/summary/total/:type", h.getTotalByType)
		tx.GET("/summary/date-range/:type", h.getTotalByTypeAndDateRange)
		tx.GET("/summary/category/:type", h.getCategorySummary)
		tx.GET("/monthly-summary", h.getMonthlySummary)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Hello
// @Tags         system
// @Produce      json
// @Success      200  {string}  string  "Hello, World!"
// @Router       /api/hello [get]
func (h *Handler) hello(c *gin.Context) {
	c.JSON(http.StatusOK, "Hello, World!")
}
