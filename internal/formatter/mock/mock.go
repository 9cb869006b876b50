package mock

import (
	"sync"

	"github.com/diegomathiasDD/interfaces/internal/formatter"
)

// Formatter is a recording implementation of the formatter interface for
// testing. It tracks every input it was asked to format and can return a
// canned reply instead of echoing the input.
type Formatter struct {
	mu     sync.Mutex
	inputs []string

	// Reply, when set, is returned from every Format call.
	Reply string
	// UseReply controls whether Reply is returned. When false the input
	// passes through unchanged, like the plain formatter.
	UseReply bool
}

var _ formatter.Formatter = (*Formatter)(nil)

// NewFormatter creates a recording formatter that passes input through.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// NewFormatterWithReply creates a recording formatter that always returns
// the given reply.
func NewFormatterWithReply(reply string) *Formatter {
	return &Formatter{Reply: reply, UseReply: true}
}

// Format records the input and returns either the canned reply or the
// input itself.
func (f *Formatter) Format(text string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs = append(f.inputs, text)
	if f.UseReply {
		return f.Reply
	}
	return text
}

// Calls returns how many times Format was invoked.
func (f *Formatter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}

// LastInput returns the most recent input, or "" if Format was never called.
func (f *Formatter) LastInput() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inputs) == 0 {
		return ""
	}
	return f.inputs[len(f.inputs)-1]
}

// Inputs returns a copy of every recorded input in call order.
func (f *Formatter) Inputs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.inputs))
	copy(out, f.inputs)
	return out
}

// Reset clears the recorded calls.
func (f *Formatter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = nil
}
