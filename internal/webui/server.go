// Package webui serves the submission form to a browser.
package webui

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/valpere/postgen/internal/i18n"
	"github.com/valpere/postgen/internal/langs"
	"github.com/valpere/postgen/internal/submission"
)

//go:embed templates/*.html
var templateFS embed.FS

// labelKeys are the catalogue entries the page renders.
var labelKeys = []string{
	"ui_title", "ui_subtitle", "ui_webhook", "ui_webhook_hint", "ui_language",
	"ui_tab_url", "ui_tab_text", "ui_url_prompt", "ui_url_label", "ui_url_hint",
	"ui_text_prompt", "ui_text_label", "ui_text_hint", "ui_send_url", "ui_send_text",
	"result_label", "status_ready", "status_sending",
}

type Options struct {
	Addr            string
	Mode            string
	Locale          string
	Webhook         string
	DefaultLanguage string
}

type Server struct {
	opts       Options
	engine     *gin.Engine
	httpServer *http.Server
	poster     submission.Poster
	translator *i18n.Translator
}

func New(poster submission.Poster, translator *i18n.Translator, opts Options) *Server {
	switch opts.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = langs.Default.Name
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	s := &Server{
		opts:       opts,
		engine:     engine,
		poster:     poster,
		translator: translator,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.GET("/languages", s.handleLanguages)
	api.POST("/submit", s.handleSubmit)
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.opts.Addr).Msg("web host listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) locale(c *gin.Context) string {
	if l := strings.TrimSpace(c.Query("locale")); l != "" && s.translator.Supported(l) {
		return l
	}
	return s.opts.Locale
}

func (s *Server) handleIndex(c *gin.Context) {
	locale := s.locale(c)
	catalog := s.translator.Catalog(locale)

	labels := make(map[string]string, len(labelKeys))
	for _, key := range labelKeys {
		labels[key] = catalog.T(key, nil)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Locale":          locale,
		"T":               labels,
		"Webhook":         s.opts.Webhook,
		"Languages":       langs.Names(),
		"DefaultLanguage": s.opts.DefaultLanguage,
	})
}

type languagesResponse struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

func (s *Server) handleLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, languagesResponse{
		Default:   s.opts.DefaultLanguage,
		Languages: langs.Names(),
	})
}

type submitRequest struct {
	Kind       string `json:"kind"`
	Webhook    string `json:"webhook"`
	TargetLang string `json:"target_lang"`
	Content    string `json:"content"`
}

// ErrorResponse is returned for requests the API cannot interpret.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (s *Server) handleSubmit(c *gin.Context) {
	var body submitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: "invalid request body", Detail: err.Error()})
		return
	}

	kind, err := submission.ParseKind(body.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: "invalid kind", Detail: err.Error()})
		return
	}

	controller := submission.NewController(s.poster, s.translator.Catalog(s.locale(c)))
	// A closed browser tab does not abort the call.
	out := controller.Submit(context.WithoutCancel(c.Request.Context()), submission.Request{
		Kind:           kind,
		TargetLanguage: body.TargetLang,
		Content:        body.Content,
		Endpoint:       body.Webhook,
	})

	status := http.StatusOK
	if submission.IsValidation(out.Err) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, out)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}
