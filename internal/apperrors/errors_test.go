package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	if got := StatusOf(ErrForbidden); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
	if got := StatusOf(ErrOrderMissing); got != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got)
	}
}

func TestStatusOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("load order: %w", ErrOrderMissing)
	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Fatalf("expected 404 through the wrap, got %d", got)
	}
	if !errors.Is(wrapped, ErrOrderMissing) {
		t.Fatal("expected errors.Is to see the sentinel through the wrap")
	}
}

func TestStatusOfUnknownError(t *testing.T) {
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got)
	}
}
