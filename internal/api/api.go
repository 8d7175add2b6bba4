package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jon4hz/aitoolbox/internal/api/auth"
	"github.com/jon4hz/aitoolbox/internal/api/handler"
	"github.com/jon4hz/aitoolbox/internal/config"
	"github.com/jon4hz/aitoolbox/internal/database"
	"github.com/jon4hz/aitoolbox/internal/static"
	"github.com/jon4hz/aitoolbox/web/templates"
)

type Server struct {
	cfg        *config.Config
	ginEngine  *gin.Engine
	db         *database.Client
	auth       *auth.Service
	httpServer *http.Server
}

func New(cfg *config.Config, db *database.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		auth:      auth.New(db),
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:    cfg.Listen,
		Handler: s.ginEngine,
	}
	return s, nil
}

func (s *Server) setupSession() {
	key := s.cfg.Session.Key
	if key == "" {
		// Sessions won't survive a restart without a configured key.
		key = uuid.NewString()
	}
	store := cookie.NewStore([]byte(key))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.Session.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("aitoolbox_session", store))
}

func (s *Server) setupRoutes() error {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	tmpl, err := template.ParseFS(templates.FS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(tmpl)
	s.ginEngine.StaticFS("/static", http.FS(static.FS()))

	h := handler.New(s.db, s.auth, s.cfg)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/tools", h.Tools)
	s.ginEngine.GET("/register", h.RegisterForm)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.Logout)

	s.ginEngine.GET("/admin/login", h.AdminLoginForm)
	s.ginEngine.POST("/admin/login", h.AdminLogin)

	admin := s.ginEngine.Group("/admin")
	admin.Use(auth.RequireAdmin())
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/add-tool", h.AddToolForm)
	admin.POST("/add-tool", h.AddTool)
	admin.GET("/delete-tool/:id", h.DeleteTool)

	return nil
}

// Handler exposes the underlying http handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

func (s *Server) Run() error {
	log.Info("starting server", "listen", s.cfg.Listen)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
