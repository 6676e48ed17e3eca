// Package period normalizes the textual month labels stored on fund requests
// and salary payments.
//
// Records keep the full English month name ("January") for compatibility with
// existing data; every write path funnels through NormalizeMonth so "jan",
// "JANUARY" and "1" all land on the same label.
package period

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidYear  = errors.New("invalid year")
)

// NormalizeMonth returns the canonical month label for v.
func NormalizeMonth(v string) (string, error) {
	m, err := ParseMonth(v)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func ParseMonth(v string) (time.Month, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return 0, ErrInvalidMonth
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, ErrInvalidMonth
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return m, nil
		}
	}

	return 0, ErrInvalidMonth
}

func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return ErrInvalidYear
	}
	return nil
}

// Key renders a sortable YYYYMM key, e.g. for transaction ids.
func Key(month string, year int) string {
	m, err := ParseMonth(month)
	if err != nil {
		return strconv.Itoa(year) + "00"
	}
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format("200601")
}
