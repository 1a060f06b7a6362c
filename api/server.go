package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/logger"
	"github.com/mbenaiss/whatsapp-helpdesk/metrics"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
	"github.com/mbenaiss/whatsapp-helpdesk/web"
)

const (
	cookieName = "helpdesk"
	sessionKey = "sid"
)

// Options configures the HTTP server
type Options struct {
	Port          string
	SessionSecret string
	SessionMaxAge time.Duration
}

// Server represents the HTTP handler
type Server struct {
	service services.Service
	metrics *metrics.Metrics
	log     *zap.SugaredLogger
	cookies *sessions.CookieStore
	router  *gin.Engine
	server  *http.Server
}

// Response represents a generic API response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NewServer creates a new HTTP server with every route registered
func NewServer(service services.Service, m *metrics.Metrics, log *zap.SugaredLogger, opts Options) (*Server, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.Gin(log))
	router.SetHTMLTemplate(tmpl)

	cookies := sessions.NewCookieStore([]byte(opts.SessionSecret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		service: service,
		metrics: m,
		log:     log,
		cookies: cookies,
		router:  router,
		server: &http.Server{
			Addr:    ":" + opts.Port,
			Handler: router,
		},
	}
	s.registerRoutes(router)

	return s, nil
}

// registerRoutes registers all routes
func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	pages := router.Group("/", s.withSession)
	{
		pages.GET("/", s.handleIndex)
		pages.GET("/login", s.handleLoginPage)
		pages.POST("/login", s.handleLogin)
		pages.POST("/login/dismiss", s.handleDismissLoginError)
		pages.POST("/logout", s.handleLogout)

		pages.GET("/dashboard", s.handleDashboard)
		pages.POST("/dashboard/tab", s.handleSelectTab)
		pages.POST("/dashboard/language", s.handleLanguage)
		pages.POST("/dashboard/dialog", s.handleOpenDialog)
		pages.POST("/dashboard/dialog/confirm", s.handleConfirmDialog)
		pages.POST("/dashboard/dialog/cancel", s.handleCancelDialog)
		pages.POST("/dashboard/records/:kind/:id/delete", s.handleDelete)
		pages.POST("/dashboard/chats/:id", s.handleSelectChat)

		pages.GET("/profile", s.handleProfile)
		pages.POST("/profile/back", s.handleProfileBack)
		pages.POST("/profile/edit", s.handleProfileEdit)
		pages.POST("/profile/save", s.handleProfileSave)
		pages.POST("/profile/cancel", s.handleProfileCancel)
		pages.POST("/profile/schedule/edit", s.handleScheduleEdit)
		pages.POST("/profile/schedule/save", s.handleScheduleSave)
		pages.POST("/profile/schedule/cancel", s.handleScheduleCancel)
	}

	api := router.Group("/api", s.withSession)
	{
		api.GET("/state", s.handleState)
		api.GET("/translations/:lang", s.handleTranslations)
		api.GET("/instances/:id/qr", s.handleInstanceQR)
	}
}

// withSession makes sure the request carries a session id cookie
func (s *Server) withSession(c *gin.Context) {
	// A cookie that fails to decode yields a fresh session.
	sess, _ := s.cookies.Get(c.Request, cookieName)

	id, _ := sess.Values[sessionKey].(string)
	if id == "" {
		id = uuid.NewString()
		sess.Values[sessionKey] = id
		if err := sess.Save(c.Request, c.Writer); err != nil {
			s.log.Errorw("failed to save session cookie", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
				Success: false,
				Message: "Failed to start session",
			})
			return
		}
	}

	c.Set(sessionKey, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
