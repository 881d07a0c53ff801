package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/breeze/pkg/langdetect"
)

func TestDetect_ByFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     langdetect.Language
	}{
		{"index.html", langdetect.HTML},
		{"page.htm", langdetect.HTML},
		{"README.md", langdetect.Markdown},
		{"feed.xml", langdetect.XML},
		{"icon.svg", langdetect.XML},
		{"App.vue", langdetect.Vue},
		{"main.go", langdetect.Other},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect(tt.filename, nil))
		})
	}
}

func TestDetect_ByContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, langdetect.HTML,
		langdetect.Detect("", []byte("<!DOCTYPE html>\n<html><body></body></html>")))
	assert.Equal(t, langdetect.Other, langdetect.Detect("", nil))
}

func TestIsMarkup(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.HTML.IsMarkup())
	assert.True(t, langdetect.Markdown.IsMarkup())
	assert.False(t, langdetect.Other.IsMarkup())
}
