package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError_WithExactError(t *testing.T) {
	if !IsNotFoundError(ErrNotFound) {
		t.Error("expected true for ErrNotFound")
	}
}

func TestIsNotFoundError_WithWrappedError(t *testing.T) {
	err := fmt.Errorf("lookup /x: %w", ErrNotFound)
	if !IsNotFoundError(err) {
		t.Error("expected true for error wrapping ErrNotFound")
	}
}

func TestIsNotFoundError_WithDifferentError(t *testing.T) {
	if IsNotFoundError(errors.New("some other error")) {
		t.Error("expected false for unrelated error")
	}
	if IsNotFoundError(ErrMethodNotAllowed) {
		t.Error("expected false for ErrMethodNotAllowed")
	}
}

func TestIsNotFoundError_WithNil(t *testing.T) {
	if IsNotFoundError(nil) {
		t.Error("expected false for nil error")
	}
}
