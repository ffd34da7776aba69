package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPrice = errors.New("malformed price")

// ParsePrice converts a menu price string ("10.00", "4.5", "$9") to cents.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, ErrBadPrice
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrBadPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, ErrBadPrice
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	return dollars*100 + cents, nil
}

func FormatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
