package domain

// Document - entity stored in the search index, keyed by its CMS post id
type Document interface {
	DocumentID() int
}
