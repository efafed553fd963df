package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

type ListItem struct {
	ID   uint
	Text string
}

type ListPageData struct {
	Username string
	Items    []ListItem
}

// Renderer serves the two HTML pages of the app from embedded templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	return &Renderer{
		templates: templates,
	}, nil
}

func (r *Renderer) RenderAuthPage(w io.Writer) error {
	if err := r.templates.ExecuteTemplate(w, "auth.html", nil); err != nil {
		return fmt.Errorf("render auth page: %w", err)
	}
	return nil
}

func (r *Renderer) RenderListPage(w io.Writer, data ListPageData) error {
	if err := r.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("render list page: %w", err)
	}
	return nil
}
