package mock

import (
	"reflect"
	"testing"
)

func TestFormatter_RecordsCalls(t *testing.T) {
	f := NewFormatter()

	if f.Calls() != 0 {
		t.Errorf("Calls() = %d before any call, want 0", f.Calls())
	}
	if f.LastInput() != "" {
		t.Errorf("LastInput() = %q before any call, want \"\"", f.LastInput())
	}

	if got := f.Format("first"); got != "first" {
		t.Errorf("Format(%q) = %q, want input passed through", "first", got)
	}
	f.Format("second")

	if f.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", f.Calls())
	}
	if f.LastInput() != "second" {
		t.Errorf("LastInput() = %q, want %q", f.LastInput(), "second")
	}
	if got, want := f.Inputs(), []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Inputs() = %v, want %v", got, want)
	}
}

func TestFormatter_CannedReply(t *testing.T) {
	f := NewFormatterWithReply("fixed")

	if got := f.Format("anything"); got != "fixed" {
		t.Errorf("Format() = %q, want canned reply %q", got, "fixed")
	}
	if f.LastInput() != "anything" {
		t.Errorf("LastInput() = %q, want %q", f.LastInput(), "anything")
	}
}

func TestFormatter_Reset(t *testing.T) {
	f := NewFormatter()
	f.Format("a")
	f.Format("b")
	f.Reset()

	if f.Calls() != 0 {
		t.Errorf("Calls() = %d after Reset, want 0", f.Calls())
	}
	if len(f.Inputs()) != 0 {
		t.Errorf("Inputs() = %v after Reset, want empty", f.Inputs())
	}
}
