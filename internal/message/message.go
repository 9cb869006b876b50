// Package message builds user-facing greeting messages through an
// injected formatter. The formatter is the only dependency and is
// supplied at construction, never looked up.
package message

import (
	"errors"
	"fmt"

	"github.com/diegomathiasDD/interfaces/internal/formatter"
)

// DefaultTemplate is the greeting template used when none is configured.
// It must contain exactly one %s for the name.
const DefaultTemplate = "Hello, %s! Welcome to the system."

// ErrNilFormatter is returned when a client is constructed without a
// formatter. This is the only hard failure in the system.
var ErrNilFormatter = errors.New("formatter must not be nil")

// Client composes a greeting and runs it through its formatter.
type Client struct {
	formatter formatter.Formatter
	template  string
}

// NewClient creates a message client with the given formatter.
func NewClient(f formatter.Formatter) (*Client, error) {
	if f == nil {
		return nil, ErrNilFormatter
	}
	return &Client{formatter: f, template: DefaultTemplate}, nil
}

// NewClientWithTemplate creates a message client with a custom greeting
// template. An empty template falls back to DefaultTemplate.
func NewClientWithTemplate(f formatter.Formatter, template string) (*Client, error) {
	c, err := NewClient(f)
	if err != nil {
		return nil, err
	}
	if template != "" {
		c.template = template
	}
	return c, nil
}

// BuildMessage renders the greeting for name and applies the formatter
// exactly once. Results are never cached.
func (c *Client) BuildMessage(name string) string {
	return c.formatter.Format(fmt.Sprintf(c.template, name))
}
