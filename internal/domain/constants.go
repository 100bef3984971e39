package domain

// Content source defaults shared by the resolver, the business API and the index sync.
const (
	DefaultPageAPIPath     = "global_page"
	DefaultBusinessAPIPath = "global_business"
	GlobalURLPath          = "global"
	DefaultLanguageCode    = "sv"
	StatusPublish          = "publish"

	MainTagGroupSlug        = "huvudtaggar"
	SubTagGroupSlug         = "subtaggar"
	TransactionTagGroupSlug = "transaktionsform"

	BusinessPageTypeName = "BusinessPage"
	TopMenuPageTypeName  = "MenuFullPage"

	// MaxResultSize - page size used when the whole catalog is needed in one request
	MaxResultSize = 3000

	// TagAggregationSize caps the number of distinct tag buckets returned with a search
	TagAggregationSize = 1000
)
