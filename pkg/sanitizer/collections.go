package sanitizer

import "strings"

// UniqueFold drops blank entries and entries that repeat an earlier one
// under Unicode case folding. The first spelling seen is kept, in order.
func UniqueFold(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		dup := false
		for _, kept := range out {
			if strings.EqualFold(kept, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
