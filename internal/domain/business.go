package domain

import (
	"strings"
	"time"
)

// Business - business document as stored in the search index
type Business struct {
	ID                    int                    `json:"id"`
	DetailPageLink        string                 `json:"detailPageLink"`
	Header                string                 `json:"header"`
	ShortDescription      string                 `json:"shortDescription,omitempty"`
	Description           string                 `json:"description,omitempty"`
	OnlineOnly            *bool                  `json:"onlineOnly,omitempty"`
	Area                  string                 `json:"area,omitempty"`
	InstagramUsername     string                 `json:"instagramUsername,omitempty"`
	FacebookURL           string                 `json:"facebookUrl,omitempty"`
	WebsiteURL            string                 `json:"websiteUrl,omitempty"`
	Email                 string                 `json:"email,omitempty"`
	Phone                 *int64                 `json:"phone,omitempty"`
	Image                 *Image                 `json:"image,omitempty"`
	OpeningHours          *OpeningHours          `json:"openingHours,omitempty"`
	City                  *IDAndName             `json:"city,omitempty"`
	PageType              *IDAndName             `json:"pageType,omitempty"`
	LanguageCode          string                 `json:"languageCode"`
	AddressAndCoordinates []AddressAndCoordinate `json:"addressAndCoordinates,omitempty"`
	Tags                  []string               `json:"tags,omitempty"`
	VisibleForCities      []int                  `json:"visibleForCities,omitempty"`
	Created               time.Time              `json:"created"`
	LastUpdated           time.Time              `json:"lastUpdated"`
}

func (b Business) DocumentID() int { return b.ID }

// HasDetailPageSuffix reports whether the detail link ends with "/"+slug.
func (b Business) HasDetailPageSuffix(slug string) bool {
	return strings.HasSuffix(b.DetailPageLink, "/"+slug)
}

// PageTypeName returns the template registered for the business page, if any.
func (b Business) PageTypeName() string {
	if b.PageType == nil {
		return ""
	}
	return b.PageType.Name
}

type IDAndName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AddressAndCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type Image struct {
	ImageID     *int         `json:"imageId,omitempty"`
	HTML        string       `json:"html,omitempty"`
	AltText     string       `json:"altText,omitempty"`
	Thumbnail   *SingleImage `json:"thumbnail,omitempty"`
	Medium      *SingleImage `json:"medium,omitempty"`
	MediumLarge *SingleImage `json:"mediumLarge,omitempty"`
	Large       *SingleImage `json:"large,omitempty"`
}

type SingleImage struct {
	URL    string `json:"url,omitempty"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// BusinessCoordinate - lightweight projection used by the map
type BusinessCoordinate struct {
	ID                    int                    `json:"id"`
	Header                string                 `json:"header"`
	ShortDescription      string                 `json:"shortDescription,omitempty"`
	DetailPageLink        string                 `json:"detailPageLink"`
	AddressAndCoordinates []AddressAndCoordinate `json:"addressAndCoordinates,omitempty"`
}

// BusinessHit - search hit with its relevance score
type BusinessHit struct {
	Business Business
	Score    *float64
}

// TagBucket - number of matching documents carrying a tag
type TagBucket struct {
	Key      string `json:"key"`
	DocCount int64  `json:"docCount"`
}

// BusinessSearchResult - one page of businesses, the full match count and tag facets
type BusinessSearchResult struct {
	Items     []BusinessHit
	Total     int64
	TagCounts []TagBucket
}

// BusinessFilter - caller supplied search parameters
type BusinessFilter struct {
	Query           string
	Tags            []string
	TransactionTags []string
	RegionIDs       []int
	Digital         *bool
	OpenNow         bool
	LanguageCode    string
	Sorting         BusinessSorting
	RandomSeed      int64
	From            int
	Size            int
}
