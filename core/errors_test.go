package core_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
)

func TestValidationError(t *testing.T) {
	err := core.NewValidationError(errors.New("bad input"),
		core.FieldError{Field: "indexNo", Error: "already taken"})

	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("NewValidationError() returned %T, want *core.ValidationError", err)
	}
	if vErr.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", vErr.Error(), "bad input")
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "indexNo" {
		t.Errorf("Fields = %+v, want one entry for indexNo", vErr.Fields)
	}
}

func TestValidationErrorWithoutCause(t *testing.T) {
	err := core.NewValidationError(nil, core.FieldError{Field: "startDate", Error: "required"})

	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("NewValidationError() returned %T, want *core.ValidationError", err)
	}
	if vErr.Error() != "" {
		t.Errorf("Error() = %q, want empty string", vErr.Error())
	}
}

func TestIsShutdown(t *testing.T) {
	err := core.NewShutdownError("store gone")
	if !core.IsShutdown(err) {
		t.Error("IsShutdown() = false for a shutdown error")
	}
	if !core.IsShutdown(errors.Wrap(err, "handling request")) {
		t.Error("IsShutdown() = false for a wrapped shutdown error")
	}
	if core.IsShutdown(errors.New("boom")) {
		t.Error("IsShutdown() = true for an ordinary error")
	}
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		lower []bool
		want  string
	}{
		{"trims whitespace", "  Mrs. Sarah Silva \n", nil, "Mrs. Sarah Silva"},
		{"keeps case by default", " 10-B ", nil, "10-B"},
		{"lowers on demand", " Principal@School.LK ", []bool{true}, "principal@school.lk"},
		{"explicit false keeps case", "AbC", []bool{false}, "AbC"},
		{"empty stays empty", "   ", []bool{true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.CleanString(tt.in, tt.lower...); got != tt.want {
				t.Errorf("CleanString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
