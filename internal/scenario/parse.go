package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeq turns a literal like "1,4,8,9" into a sequence. The empty
// string is the empty sequence. Elements must be integers; a malformed
// element is an error rather than a silent zero, since a stray zero in a
// reference literal would corrupt the run it feeds.
func ParseSeq(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("scenario: bad sequence element %d in %q: %w", i+1, raw, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatSeq is the inverse of ParseSeq.
func FormatSeq(seq []int) string {
	if len(seq) == 0 {
		return ""
	}
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
