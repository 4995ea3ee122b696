package billing

import (
	"fmt"
	"strings"
)

func splitExact(s string, sep byte, out []string) bool {
	i := 0
	start := 0
	for j := 0; j < len(s); j++ {
		if s[j] == sep {
			if i >= len(out) {
				return false
			}
			out[i] = strings.TrimSpace(s[start:j])
			i++
			start = j + 1
		}
	}
	if i != len(out)-1 {
		return false
	}
	out[i] = strings.TrimSpace(s[start:])
	return true
}

func atoiFast(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty int")
	}

	n := 0

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad int %q", s)
		}

		n = n*10 + int(c-'0')
	}

	return n, nil
}
