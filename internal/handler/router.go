package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookswap/internal/handler/api"
	"bookswap/internal/handler/middleware"
	"bookswap/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	listingHandler *api.ListingHandler,
	exchangeHandler *api.ExchangeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookHandler, listingHandler, exchangeHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	listingHandler *api.ListingHandler,
	exchangeHandler *api.ExchangeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: bookHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.Get},
			})

			booksWrite := books.Group("")
			booksWrite.Use(authMiddleware.RequireAuth())
			addRoutes(booksWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: bookHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.Delete},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.Get},
			})

			listingsAuth := listings.Group("")
			listingsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(listingsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: listingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/exchanges", Handler: exchangeHandler.ListForListing},
			})
		}

		exchanges := apiGroup.Group("/exchanges")
		exchanges.Use(authMiddleware.RequireAuth())
		{
			addRoutes(exchanges, []route{
				{Method: http.MethodPost, Path: "", Handler: exchangeHandler.Propose},
				{Method: http.MethodGet, Path: "", Handler: exchangeHandler.List},
				{Method: http.MethodGet, Path: "/status/:status", Handler: exchangeHandler.ListByStatus},
				{Method: http.MethodGet, Path: "/:id", Handler: exchangeHandler.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: exchangeHandler.Accept},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: exchangeHandler.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: exchangeHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
