// Package render turns the site content into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/Zachkp/ee-portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet tree, rooted so that "site.css" is at the top.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is one routable page: its URL path, template name and view data.
type Page struct {
	Path     string
	Template string
	Data     any
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	tpl      *template.Template
	pages    []Page
	notFound Page
}

// New parses the embedded templates and prepares the page views.
func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tpl: tpl,
		pages: []Page{
			{Path: "/", Template: "index.html", Data: NewHomeView()},
			{Path: content.DetailPath, Template: "project.html", Data: NewDetailView(content.ImagingPage())},
		},
		notFound: Page{Template: "404.html", Data: newNotFoundView()},
	}, nil
}

// Templates returns the parsed template set, for engines that execute templates by name.
func (r *Renderer) Templates() *template.Template {
	return r.tpl
}

// Pages returns the routable pages in registration order.
func (r *Renderer) Pages() []Page {
	return append([]Page(nil), r.pages...)
}

// NotFound returns the 404 page.
func (r *Renderer) NotFound() Page {
	return r.notFound
}

// Render writes the page to w. Output is buffered, so w receives either the whole page
// or nothing.
func (r *Renderer) Render(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, p.Template, p.Data); err != nil {
		return fmt.Errorf("render %s: %w", p.Template, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", p.Template, err)
	}
	return nil
}

// Bytes renders the page into memory.
func (r *Renderer) Bytes(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
