package service

import "github.com/aussiebroadwan/shm/pkg/idx"

// IDFunc mints identifiers for new records. Services default to idx.New.
type IDFunc func() string

func (f IDFunc) next() string {
	if f == nil {
		return idx.New().String()
	}
	return f()
}

// uniqueIDs returns the distinct ids of all lists in first-seen order.
func uniqueIDs(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
