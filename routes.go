package main

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// server holds what the handlers need.
type server struct {
	store     *catalog.Store
	contact   *contact.Service
	limiter   *clientLimiter
	staticDir string
}

func newRouter(s *server, mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw...)
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	if s.staticDir != "" {
		r.Static("/static", s.staticDir)
	}

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"heroTitle":    HeroTitle,
			"heroSubtitle": HeroSubtitle,
			"heroTagline":  HeroTagline,
			"about":        AboutMe,
			"highlights":   Highlights,
			"stats":        Stats,
			"assets":       theme.AssetsFor(theme.Light),
		})
	})

	api := r.Group("/api")

	api.GET("/experience", func(c *gin.Context) {
		items, err := s.store.Experiences(c.Request.Context())
		respondList(c, items, len(items), err)
	})

	api.GET("/projects", func(c *gin.Context) {
		items, err := s.store.Projects(c.Request.Context(), c.Query("category"))
		respondList(c, items, len(items), err)
	})

	api.GET("/projects/categories", func(c *gin.Context) {
		items, err := s.store.Categories(c.Request.Context())
		respondList(c, items, len(items), err)
	})

	api.GET("/skills", func(c *gin.Context) {
		items, err := s.store.Skills(c.Request.Context())
		respondList(c, items, len(items), err)
	})

	api.GET("/theme/:mode", func(c *gin.Context) {
		mode, err := theme.Parse(c.Param("mode"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme mode"})
			return
		}
		prefersDark := strings.EqualFold(c.Query("prefers"), "dark")
		c.JSON(http.StatusOK, theme.AssetsFor(mode.Resolve(prefersDark)))
	})

	// Contact form submission, JSON or form-encoded
	contactHandlers := []gin.HandlerFunc{}
	if s.limiter != nil {
		contactHandlers = append(contactHandlers, rateLimitMiddleware(s.limiter))
	}
	contactHandlers = append(contactHandlers, s.handleContact)
	api.POST("/contact", contactHandlers...)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}

func (s *server) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := s.contact.Submit(c.Request.Context(), sub)
	var verr *contact.ValidationError
	var derr *contact.DeliveryError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": contact.MsgSent})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.As(err, &derr):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": contact.MsgSendFailed})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondList writes the {success, data, total} envelope, or a generic 500
// that does not leak the store error.
func respondList(c *gin.Context, data any, total int, err error) {
	if err != nil {
		_ = c.Error(err)
		requestLogger(c).Error().Err(err).Str("path", c.Request.URL.Path).Msg("catalog query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "total": total})
}
