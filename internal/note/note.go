// Package note parses markdown notes with optional YAML frontmatter.
// The frontmatter may name a formatting mode for the note body.
package note

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Frontmatter holds the recognized YAML frontmatter fields of a note.
type Frontmatter struct {
	Title string `yaml:"title,omitempty"`
	Mode  string `yaml:"mode,omitempty"`
}

// Note is a parsed markdown note: its frontmatter and the body below it.
type Note struct {
	Meta Frontmatter
	Body string
}

// ParseFile reads and parses a note from a file.
func ParseFile(path string) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read note file: %w", err)
	}
	return Parse(data)
}

// Parse parses a note from markdown. A note without frontmatter is valid;
// its body is the whole input.
func Parse(data []byte) (*Note, error) {
	var fm Frontmatter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return &Note{
		Meta: fm,
		Body: string(rest),
	}, nil
}

// HasMeta reports whether the note carries any frontmatter fields.
func (n *Note) HasMeta() bool {
	return n.Meta != (Frontmatter{})
}

// Render serializes the note back to markdown: frontmatter (when present)
// above the body, with the standard --- fences.
func (n *Note) Render() (string, error) {
	if !n.HasMeta() {
		return n.Body, nil
	}

	meta, err := yaml.Marshal(n.Meta)
	if err != nil {
		return "", fmt.Errorf("failed to serialize frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")
	b.WriteString(n.Body)
	return b.String(), nil
}
