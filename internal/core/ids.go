package core

import (
	"sort"
	"strconv"
	"strings"
)

// splitID separates a trailing decimal suffix, so "P12" becomes ("P", 12, true).
func splitID(id string) (string, int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}

// CompareIDs orders ids by prefix, then ids without a numeric suffix before
// those with one, then by the suffix's value, so P2 sorts before P10. Ids that
// tie on all three, like P01 and P1, compare lexicographically.
func CompareIDs(a, b string) int {
	pa, na, oka := splitID(a)
	pb, nb, okb := splitID(b)
	if c := strings.Compare(pa, pb); c != 0 {
		return c
	}
	switch {
	case oka != okb:
		if okb {
			return -1
		}
		return 1
	case na != nb:
		if na < nb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func SortByID(processes []Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return CompareIDs(processes[i].ID, processes[j].ID) < 0
	})
}
