package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BusinessSorting - ordering of a business search
type BusinessSorting int

const (
	SortRandom BusinessSorting = iota
	SortLatestAdded
	SortLatestUpdated
	SortHeaderDesc
	SortHeaderAsc
	// SortRelevance is never sent by clients; it orders by descending score.
	SortRelevance
)

var sortingNames = map[BusinessSorting]string{
	SortRandom:        "Random",
	SortLatestAdded:   "LatestAdded",
	SortLatestUpdated: "LatestUpdated",
	SortHeaderDesc:    "HeaderDesc",
	SortHeaderAsc:     "HeaderAcs",
	SortRelevance:     "Relevance",
}

func (s BusinessSorting) String() string {
	if name, ok := sortingNames[s]; ok {
		return name
	}
	return "BusinessSorting(" + strconv.Itoa(int(s)) + ")"
}

// ParseBusinessSorting accepts the enum name (case-insensitive, "HeaderAsc" and
// "HeaderAcs" both map to ascending header) or its numeric value. Empty means Random.
func ParseBusinessSorting(raw string) (BusinessSorting, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortRandom, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < int(SortRandom) || n > int(SortHeaderAsc) {
			return SortRandom, fmt.Errorf("unknown sorting %d", n)
		}
		return BusinessSorting(n), nil
	}
	if strings.EqualFold(raw, "HeaderAsc") {
		return SortHeaderAsc, nil
	}
	for s, name := range sortingNames {
		if s != SortRelevance && strings.EqualFold(raw, name) {
			return s, nil
		}
	}
	return SortRandom, fmt.Errorf("unknown sorting %q", raw)
}
