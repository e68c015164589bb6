package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/handler/api"
	"spinwheel/internal/handler/middleware"
	"spinwheel/internal/pkg/config"
	"spinwheel/internal/pkg/ratelimit"
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
	wheelHandler *api.WheelHandler,
	voucherAdminHandler *api.VoucherAdminHandler,
	shareConfigHandler *api.ShareConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *ratelimit.Limiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg.Wheel, wheelHandler, voucherAdminHandler, shareConfigHandler, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	wheelCfg config.WheelConfig,
	wheelHandler *api.WheelHandler,
	voucherAdminHandler *api.VoucherAdminHandler,
	shareConfigHandler *api.ShareConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *ratelimit.Limiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	spinLimit := middleware.RateLimit(limiter, "spin", wheelCfg.SpinRateLimit, wheelCfg.RateLimitInterval)
	shareLimit := middleware.RateLimit(limiter, "share", wheelCfg.ShareRateLimit, wheelCfg.RateLimitInterval)
	adminLimit := middleware.RateLimit(limiter, "admin", wheelCfg.AdminRateLimit, wheelCfg.RateLimitInterval)

	apiGroup := engine.Group("/api")
	{
		wheel := apiGroup.Group("/wheel")
		{
			addRoutes(wheel, []route{
				{Method: http.MethodGet, Path: "", Handler: wheelHandler.Status, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})

			authRequired := wheel.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/spin", Handler: wheelHandler.Spin, Mw: []gin.HandlerFunc{spinLimit}},
				{Method: http.MethodPost, Path: "/share", Handler: wheelHandler.Share, Mw: []gin.HandlerFunc{shareLimit}},
				{Method: http.MethodGet, Path: "/history", Handler: wheelHandler.History},
			})
		}

		shareConfig := apiGroup.Group("/share-config")
		{
			addRoutes(shareConfig, []route{
				{Method: http.MethodGet, Path: "", Handler: shareConfigHandler.Get},
			})

			adminOnly := shareConfig.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: shareConfigHandler.Set},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin), adminLimit)
		{
			vouchers := admin.Group("/vouchers")
			addRoutes(vouchers, []route{
				{Method: http.MethodGet, Path: "", Handler: voucherAdminHandler.List},
				{Method: http.MethodPost, Path: "", Handler: voucherAdminHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: voucherAdminHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: voucherAdminHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: voucherAdminHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/active", Handler: voucherAdminHandler.SetActive},
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
