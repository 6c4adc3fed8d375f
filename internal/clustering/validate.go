package clustering

import (
	"strings"

	"github.com/google/uuid"
)

// ValidClusterName reports whether a proposed cluster name is usable:
// non-empty after trimming.
func ValidClusterName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidateQueryIDs partitions ids into the UUID-v4-shaped subset and a
// count of the rest. len(valid) + invalid == len(ids).
func ValidateQueryIDs(ids []string) (valid []string, invalid int) {
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil || u.Version() != 4 {
			invalid++
			continue
		}
		valid = append(valid, id)
	}
	return valid, invalid
}
