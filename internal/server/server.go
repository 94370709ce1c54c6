// Package server wires the rendered pages into a gin engine.
package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/ee-portfolio/internal/config"
	"github.com/Zachkp/ee-portfolio/internal/render"
)

// publicDirs are the asset folders under PUBLIC_DIR that pages link to.
var publicDirs = []string{"images", "docs", "media"}

// New builds the gin engine serving every page known to the renderer.
func New(cfg config.Config, pages *render.Renderer) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(pages.Templates())
	r.Use(gin.Logger(), gin.Recovery(), headersMiddleware())

	r.StaticFS("/static", http.FS(render.Static()))
	for _, dir := range publicDirs {
		r.Static("/"+dir, filepath.Join(cfg.PublicDir, dir))
	}
	r.StaticFile("/resume.pdf", filepath.Join(cfg.PublicDir, "resume.pdf"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, page := range pages.Pages() {
		r.GET(page.Path, pageHandler(pages, page, http.StatusOK))
	}
	notFound := pages.NotFound()
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, notFound.Template, notFound.Data)
	})

	return r
}

// pageHandler renders into a buffer first, so a failed render answers 500 without
// sending half a page.
func pageHandler(pages *render.Renderer, page render.Page, status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := pages.Bytes(page)
		if err != nil {
			log.Printf("Error rendering %s: %v", c.Request.URL.Path, err)
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		c.Data(status, "text/html; charset=utf-8", body)
	}
}
