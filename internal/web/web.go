// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var files embed.FS

// Page template names.
const (
	PageDashboard  = "dashboard.html"
	PageFlashcard  = "flashcard.html"
	PageCreate     = "create.html"
	PageGetStarted = "get_started.html"
	PageResult     = "result.html"
)

var funcs = template.FuncMap{
	"deckURL": DeckURL,
	"dollars": Dollars,
	"inc":     func(i int) int { return i + 1 },
}

// Templates parses every page together with the shared layout blocks.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// DeckURL links to the study page of a deck.
func DeckURL(name string) string {
	return "/flashcard?id=" + url.QueryEscape(name)
}

// Dollars formats a price in cents, dropping a zero fraction.
func Dollars(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
