package domain

// Tag - tag document as stored in the search index
type Tag struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
	Slug         string `json:"slug"`
	TagGroupID   *int   `json:"tagGroupId,omitempty"`
}

func (t Tag) DocumentID() int { return t.ID }

// Tag kinds reported with facet counts.
const (
	TagTypeMain = "main"
	TagTypeSub  = "sub"
)
