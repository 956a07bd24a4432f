package handlers

import (
	"errors"
	"testing"

	"restaurant-backend/internal/config"
)

func testPagination() pagination {
	return newPagination(config.Config{
		DefaultPage:      1,
		DefaultPageLimit: 20,
		MinPageValue:     1,
	})
}

func TestPaginationDefaults(t *testing.T) {
	page, limit, err := testPagination().parse("", "")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", page, limit)
	}
}

func TestPaginationExplicitValues(t *testing.T) {
	page, limit, err := testPagination().parse("3", "50")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if page != 3 || limit != 50 {
		t.Fatalf("expected 3/50, got %d/%d", page, limit)
	}
}

func TestPaginationRejectsBelowMinimum(t *testing.T) {
	for _, raw := range []string{"0", "-1"} {
		if _, _, err := testPagination().parse(raw, ""); !errors.Is(err, errInvalidPagination) {
			t.Fatalf("page %q: expected errInvalidPagination, got %v", raw, err)
		}
		if _, _, err := testPagination().parse("", raw); !errors.Is(err, errInvalidPagination) {
			t.Fatalf("limit %q: expected errInvalidPagination, got %v", raw, err)
		}
	}
}

func TestPaginationRejectsGarbage(t *testing.T) {
	if _, _, err := testPagination().parse("two", "20"); !errors.Is(err, errInvalidPagination) {
		t.Fatalf("expected errInvalidPagination, got %v", err)
	}
	if _, _, err := testPagination().parse("1", "1.5"); !errors.Is(err, errInvalidPagination) {
		t.Fatalf("expected errInvalidPagination, got %v", err)
	}
}
