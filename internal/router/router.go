package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/slides/internal/auth"
	"github.com/slides/internal/config"
	"github.com/slides/internal/db"
	"github.com/slides/internal/handler"
	"github.com/slides/internal/service"
	"github.com/slides/internal/view"
)

const sessionName = "slides_session"

// Route is one entry of the dispatch table. Gated routes pass through the
// auth middleware before the handler runs.
type Route struct {
	Method  string
	Path    string
	Gated   bool
	Handler gin.HandlerFunc
}

// Routes 返回有序的路由表
func Routes(api *handler.API) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Gated: true, Handler: api.ShowList},
		{Method: http.MethodPost, Path: "/", Gated: true, Handler: api.ShowList},
		{Method: http.MethodGet, Path: "/play/:slug", Handler: api.ShowPlay},
		{Method: http.MethodGet, Path: "/edit/:slug", Gated: true, Handler: api.ShowEdit},
		{Method: http.MethodPost, Path: "/edit/:slug", Gated: true, Handler: api.ShowEdit},
		{Method: http.MethodPost, Path: "/api/save-slideshow", Gated: true, Handler: api.SaveSlideshow},
		{Method: http.MethodPost, Path: "/api/delete/:slug", Gated: true, Handler: api.DeleteSlideshow},
		{Method: http.MethodGet, Path: "/healthz", Handler: handler.Health},
	}
}

// SetupRouter 根据配置打开存储并配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, logger *slog.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := db.Open(cfg.SlideshowsDir, logger)
	if err != nil {
		return nil, fmt.Errorf("open slideshow store: %w", err)
	}

	gate := auth.New(auth.Options{
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	})
	api := handler.NewAPI(service.NewSlideshowService(store), gate, logger)

	return New(api, cfg.SessionSecret), nil
}

// New 配置 Gin 引擎：全局中间件、模板与路由表
func New(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Logger(), gin.Recovery())

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(api.Logout())

	r.SetHTMLTemplate(view.Templates())

	for _, route := range Routes(api) {
		handlers := make([]gin.HandlerFunc, 0, 3)
		if strings.Contains(route.Path, ":slug") {
			handlers = append(handlers, handler.SlugParam())
		}
		if route.Gated {
			handlers = append(handlers, api.AuthRequired())
		}
		handlers = append(handlers, route.Handler)
		r.Handle(route.Method, route.Path, handlers...)
	}

	r.NoRoute(trimTrailingSlash(r))

	return r
}

// trimTrailingSlash 去掉路径末尾的斜杠后重新分发一次，仍无法匹配时返回 404
func trimTrailingSlash(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		trimmed := strings.TrimRight(path, "/")
		if trimmed == path {
			handler.NotFound(c)
			return
		}
		if trimmed == "" {
			trimmed = "/"
		}
		c.Request.URL.Path = trimmed
		c.Request.URL.RawPath = ""
		r.HandleContext(c)
		c.Abort()
	}
}
