// Package views holds the site's HTML templates and stylesheet, embedded in the binary.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Layout is the template every page is wrapped in.
const Layout = "layouts/main"

// New returns the template engine. Templates are addressed by their path under
// templates/ without the extension ("home", "layouts/main", "partials/challenge_card").
// Create it once per process; templates are parsed on the first render.
func New() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("degrees", func(rad float64) int {
		return int(math.Round(rad * 180 / math.Pi))
	})
	engine.AddFunc("lower", strings.ToLower)
	// Blur placeholders are data: URLs generated by the gallery package, which the
	// template escaper would otherwise replace in CSS url() values.
	engine.AddFunc("placeholderURL", func(s string) template.URL {
		if !strings.HasPrefix(s, "data:image/png;base64,") {
			return ""
		}
		return template.URL(s)
	})
	return engine
}

// Static is the filesystem served under /static (site.css).
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
