package handlers

import (
	"errors"
	"strconv"

	"restaurant-backend/internal/config"
)

var errInvalidPagination = errors.New("invalid pagination params")

// pagination holds the defaults and the lower bound for page/limit query
// parameters, taken from config once at startup.
type pagination struct {
	defaultPage  int64
	defaultLimit int64
	min          int64
}

func newPagination(cfg config.Config) pagination {
	return pagination{
		defaultPage:  cfg.DefaultPage,
		defaultLimit: cfg.DefaultPageLimit,
		min:          cfg.MinPageValue,
	}
}

// parse resolves page and limit from their raw query values. Absent values
// take the defaults; present values below the minimum are rejected.
func (p pagination) parse(pageStr, limitStr string) (int64, int64, error) {
	page := p.defaultPage
	limit := p.defaultLimit

	if pageStr != "" {
		parsed, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil || parsed < p.min {
			return 0, 0, errInvalidPagination
		}
		page = parsed
	}

	if limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || parsed < p.min {
			return 0, 0, errInvalidPagination
		}
		limit = parsed
	}

	return page, limit, nil
}
