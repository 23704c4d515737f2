package util

import (
	"strings"

	"github.com/samber/lo"
)

// SliceToMap turns "key=value" flag entries into a map. Entries without
// an equals sign map to an empty value instead of panicking on bad input.
func SliceToMap(slice []string) map[string]string {
	return lo.SliceToMap(slice, func(s string) (string, string) {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 1 {
			return parts[0], ""
		}
		return parts[0], parts[1]
	})
}
