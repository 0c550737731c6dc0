// Package chrono converts elapsed seconds to and from HH:MM:SS strings.
package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds renders seconds as HH:MM:SS. Hours are not wrapped, so
// 100 hours renders as "100:00:00". Negative input is treated as zero.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// ParseTimeString parses "HH:MM:SS", "MM:SS" or "SS" into seconds.
func ParseTimeString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("chrono: %q has too many fields", s)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("chrono: invalid field %q in %q: %w", p, s, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("chrono: negative field %q in %q", p, s)
		}
		total = total*60 + n
	}
	return total, nil
}
