package main

import (
	"fmt"
	"strconv"

	"github.com/bee2lab/btok"
)

// parseDate parses a YYMMDD string into a btok.Date.
func parseDate(s string) (btok.Date, error) {
	if len(s) != 6 {
		return btok.Date{}, fmt.Errorf("date %q must be exactly 6 digits, YYMMDD", s)
	}
	yy, err := strconv.Atoi(s[0:2])
	if err != nil {
		return btok.Date{}, fmt.Errorf("bad year in %q: %w", s, err)
	}
	mm, err := strconv.Atoi(s[2:4])
	if err != nil {
		return btok.Date{}, fmt.Errorf("bad month in %q: %w", s, err)
	}
	dd, err := strconv.Atoi(s[4:6])
	if err != nil {
		return btok.Date{}, fmt.Errorf("bad day in %q: %w", s, err)
	}
	return btok.NewDate(yy, mm, dd)
}
