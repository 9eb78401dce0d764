package notion

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}

	err = Wrap(err, "lookup %v", "x")
	if !IsNotFound(err) {
		t.Error("wrapped NotFound is not recognized")
	}
}

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("table width must be %d", 2)
	if !IsValidationError(err) {
		t.Error("validation error is not recognized")
	}
	if err.Error() != "table width must be 2" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if IsValidationError(errors.New("other")) {
		t.Error("plain error is wrongly recognized as validation error")
	}

	if !IsValidationError(Wrap(err, "child %d", 0)) {
		t.Error("wrapped validation error is not recognized")
	}
}
