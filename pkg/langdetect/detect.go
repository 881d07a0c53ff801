// Package langdetect classifies editor buffers by markup language.
// It uses go-enry for filename and content based detection.
package langdetect

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// Language is the markup family of a buffer.
type Language string

// Recognized languages.
const (
	HTML     Language = "html"
	Markdown Language = "markdown"
	XML      Language = "xml"
	Vue      Language = "vue"
	PHP      Language = "php"
	Template Language = "template"
	Other    Language = "other"
)

// enryLanguages maps go-enry language names to markup families.
//
//nolint:gochecknoglobals // Read-only lookup table.
var enryLanguages = map[string]Language{
	"HTML":        HTML,
	"XHTML":       HTML,
	"Markdown":    Markdown,
	"XML":         XML,
	"SVG":         XML,
	"XSLT":        XML,
	"Vue":         Vue,
	"PHP":         PHP,
	"Hack":        PHP,
	"HTML+PHP":    PHP,
	"HTML+ERB":    Template,
	"HTML+Django": Template,
	"HTML+EEX":    Template,
	"HTML+Razor":  Template,
	"Handlebars":  Template,
	"Mustache":    Template,
	"Twig":        Template,
	"Jinja":       Template,
	"Go Template": Template,
	"Liquid":      Template,
	"Nunjucks":    Template,
	"Blade":       Template,
	"Smarty":      Template,
}

// classifierCandidates limits content classification to languages whose
// buffers breeze can navigate, plus common non-markup ones.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"HTML", "Markdown", "XML", "Vue", "PHP",
	"Go", "Python", "JavaScript", "CSS", "JSON", "YAML", "Shell",
}

// Detect returns the markup family of a buffer.
// filename may be empty for unnamed buffers.
func Detect(filename string, content []byte) Language {
	if filename != "" {
		if lang, ok := enry.GetLanguageByExtension(filename); ok {
			return classify(lang)
		}
		if lang := enry.GetLanguage(filename, content); lang != "" {
			return classify(lang)
		}
	}

	if looksLikeHTML(content) {
		return HTML
	}

	if len(content) == 0 {
		return Other
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return classify(lang)
	}
	return Other
}

// IsMarkup reports whether breeze can navigate buffers of this language.
func (l Language) IsMarkup() bool {
	return l != Other
}

func classify(enryName string) Language {
	if lang, ok := enryLanguages[enryName]; ok {
		return lang
	}
	return Other
}

// looksLikeHTML checks for document-level HTML markers.
func looksLikeHTML(content []byte) bool {
	lower := bytes.ToLower(bytes.TrimSpace(content))
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}
