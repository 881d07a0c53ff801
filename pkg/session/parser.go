package session

import (
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/langdetect"
	"github.com/yaklabco/breeze/pkg/parser/html"
	"github.com/yaklabco/breeze/pkg/parser/mask"
)

// NewParser returns the parser for a buffer of the given language.
// Markdown buffers get their code masked when cfg.MaskMarkdown is set.
func NewParser(lang langdetect.Language, cfg *config.Config) *html.Parser {
	if lang == langdetect.Markdown && (cfg == nil || cfg.MaskMarkdown) {
		return html.New(html.WithMasker(mask.Markdown))
	}
	return html.New()
}
