package blockkit

import (
	"encoding/json"
	"errors"
	"testing"
)

// renderJSON renders r and returns the encoded payload.
func renderJSON(t *testing.T, r Renderer) string {
	t.Helper()
	p, err := r.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

func wantValidation(t *testing.T, err error, field string, constraint Constraint) *ValidationError {
	t.Helper()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %T is not *ValidationError", err)
	}
	if ve.Field != field {
		t.Errorf("Field = %q, want %q", ve.Field, field)
	}
	if ve.Constraint != constraint {
		t.Errorf("Constraint = %q, want %q", ve.Constraint, constraint)
	}
	return ve
}

func wantLogic(t *testing.T, err error, limit int) *LogicError {
	t.Helper()
	if !errors.Is(err, ErrLogic) {
		t.Fatalf("error = %v, want ErrLogic", err)
	}
	var le *LogicError
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not *LogicError", err)
	}
	if le.Limit != limit {
		t.Errorf("Limit = %d, want %d", le.Limit, limit)
	}
	return le
}
