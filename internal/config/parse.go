package config

import (
	"strconv"
	"strings"
)

// ParseArray reads comma-separated integers. Each token is parsed from its
// leading integer ("12px" is 12); tokens without one are dropped. ok is false
// when nothing survives, in which case the caller should keep its array.
func ParseArray(text string) (values []int, ok bool) {
	for _, tok := range strings.Split(text, ",") {
		if v, ok := leadingInt(strings.TrimSpace(tok)); ok {
			values = append(values, v)
		}
	}
	return values, len(values) > 0
}

func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatArray renders values in the form ParseArray accepts.
func FormatArray(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
