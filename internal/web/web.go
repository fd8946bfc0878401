// Package web embeds the HTML page templates.
package web

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"viewURL":      ViewURL,
	"portfolioURL": PortfolioURL,
}

// Templates parses every page template. Each file is addressed by its base
// name, e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// ViewURL is the lightbox page of the item at index within category.
func ViewURL(index int, category string) string {
	u := "/portfolio/view/" + strconv.Itoa(index)
	if category != "" {
		u += "?category=" + url.QueryEscape(category)
	}
	return u
}

func PortfolioURL(category string) string {
	if category == "" {
		return "/portfolio"
	}
	return "/portfolio?category=" + url.QueryEscape(category)
}
