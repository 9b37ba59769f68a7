package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}

// queryParams reads optional typed query parameters, keeping the first
// parse failure.
type queryParams struct {
	c   echo.Context
	err error
}

func newQueryParams(c echo.Context) *queryParams {
	return &queryParams{c: c}
}

func (q *queryParams) str(name string) string {
	return strings.TrimSpace(q.c.QueryParam(name))
}

func (q *queryParams) page() (int, int) {
	return parseIntDefault(q.str("page"), 1), parseIntDefault(q.str("per_page"), 20)
}

func (q *queryParams) float(name string) *float64 {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.fail("invalid %s", name)
		return nil
	}
	return &value
}

func (q *queryParams) boolean(name string) *bool {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail("invalid %s (use true or false)", name)
		return nil
	}
	return &value
}

func (q *queryParams) flag(name string) bool {
	value := q.boolean(name)
	return value != nil && *value
}

func (q *queryParams) timestamp(name string) *time.Time {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		q.fail("invalid %s (use RFC3339)", name)
		return nil
	}
	return &value
}

func (q *queryParams) fail(format string, args ...any) {
	if q.err == nil {
		q.err = fmt.Errorf(format, args...)
	}
}
