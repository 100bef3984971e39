package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Region - region document as stored in the search index
type Region struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	LanguageCode      string `json:"languageCode"`
	Modified          string `json:"modified,omitempty"`
	URLPath           string `json:"urlPath"`
	BusinessesAPIPath string `json:"businessesApiPath"`
	PagesAPIPath      string `json:"pagesApiPath"`
	WelcomeMessage    string `json:"welcomeMessage,omitempty"`
	Hidden            bool   `json:"hidden"`
	MenuOrder         int    `json:"menuOrder"`
}

func (r Region) DocumentID() int { return r.ID }

// SortRegions orders regions by menu order, then id, so lookups over the list
// are deterministic whatever order the index returned.
func SortRegions(regions []Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].MenuOrder != regions[j].MenuOrder {
			return regions[i].MenuOrder < regions[j].MenuOrder
		}
		return regions[i].ID < regions[j].ID
	})
}

// FindRegionByURLPath returns the first region with the given url path.
func FindRegionByURLPath(regions []Region, urlPath string) (Region, bool) {
	for _, r := range regions {
		if r.URLPath == urlPath {
			return r, true
		}
	}
	return Region{}, false
}

// FindRegionByName matches the display name or the url path, ignoring case.
func FindRegionByName(regions []Region, name string) (Region, bool) {
	for _, r := range regions {
		if strings.EqualFold(r.Name, name) || strings.EqualFold(r.URLPath, name) {
			return r, true
		}
	}
	return Region{}, false
}

// RegionIDs returns the ids of the given regions in order.
func RegionIDs(regions []Region) []int {
	ids := make([]int, 0, len(regions))
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	return ids
}

// DuplicateURLPathError - two visible regions of one language share a url path,
// which makes path resolution ambiguous
type DuplicateURLPathError struct {
	LanguageCode string
	URLPath      string
	RegionIDs    []int
}

func (e *DuplicateURLPathError) Error() string {
	return fmt.Sprintf("regions %v share url path %q in language %q", e.RegionIDs, e.URLPath, e.LanguageCode)
}

// ValidateUniqueURLPaths reports every url path used by more than one
// non-hidden region of the same language.
func ValidateUniqueURLPaths(regions []Region) []*DuplicateURLPathError {
	type key struct{ lang, path string }
	seen := make(map[key][]int)
	order := make([]key, 0)

	for _, r := range regions {
		if r.Hidden {
			continue
		}
		k := key{r.LanguageCode, r.URLPath}
		if _, ok := seen[k]; !ok {
			order = append(order, k)
		}
		seen[k] = append(seen[k], r.ID)
	}

	var dups []*DuplicateURLPathError
	for _, k := range order {
		if ids := seen[k]; len(ids) > 1 {
			dups = append(dups, &DuplicateURLPathError{LanguageCode: k.lang, URLPath: k.path, RegionIDs: ids})
		}
	}
	return dups
}

// RegionValue - region context handed to content handlers
type RegionValue struct {
	Region         string `json:"region"`
	PagesAPIURL    string `json:"pagesApiUrl"`
	BusinessAPIURL string `json:"businessApiUrl"`
}

// RegionList - active region paths and the menu-ordered regions of a language
type RegionList struct {
	PagesAPIPath    string      `json:"pagesApiPath"`
	BusinessAPIPath string      `json:"businessApiPath"`
	Title           string      `json:"title"`
	Regions         []CmsRegion `json:"regions"`
}
