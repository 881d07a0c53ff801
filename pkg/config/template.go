package config

import (
	"bytes"
	"fmt"
)

// templateHeader opens every generated configuration file.
const templateHeader = `# breeze configuration
# Values containing '=' are highlight attributes (e.g. "guifg=#ff0000 gui=bold");
# any other value links the group to an existing highlight group.

`

// GenerateTemplate creates a commented configuration file holding the defaults.
func GenerateTemplate() ([]byte, error) {
	body, err := NewConfig().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("render defaults: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.Write(body)
	return buf.Bytes(), nil
}
