package domain

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Language - site language offered by the content source
type Language struct {
	Name    string `json:"name"`
	Locale  string `json:"locale"`
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

// SupportedLanguages - languages configured in the CMS; Swedish is the default
func SupportedLanguages() []Language {
	return []Language{
		{Name: "English", Locale: "en_GB", Code: "en", Default: false},
		{Name: "Svenska", Locale: "sv_SE", Code: "sv", Default: true},
	}
}

// DefaultLanguage returns the code of the default language in the list, or
// DefaultLanguageCode when none is flagged.
func DefaultLanguage(languages []Language) string {
	for _, l := range languages {
		if l.Default {
			return l.Code
		}
	}
	return DefaultLanguageCode
}

// IsKnownLanguage reports whether code is in the list.
func IsKnownLanguage(languages []Language, code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// LanguageFromLink extracts the language segment from a CMS entity link.
//
//	http://localhost/index.php/en/region/gothenburg/ => "en"
//	http://localhost/index.php/region/goteborg/      => ""
func LanguageFromLink(languages []Language, link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" && IsKnownLanguage(languages, segment) {
			return segment
		}
	}
	return ""
}

// Rendered - WordPress rendered text field
type Rendered struct {
	Rendered string `json:"rendered"`
}

// PageType - CMS page type; the template name selects the content handler
type PageType struct {
	ID           int    `json:"id"`
	TemplateName string `json:"template_name"`
	TypeName     string `json:"typename"`
}

// Page - CMS page
type Page struct {
	ID       int        `json:"id"`
	Status   string     `json:"status,omitempty"`
	Modified string     `json:"modified,omitempty"`
	Link     string     `json:"link"`
	Slug     string     `json:"slug"`
	Title    Rendered   `json:"title"`
	Content  Rendered   `json:"content"`
	PageType []PageType `json:"page_type"`
}

// TemplateName returns the first page type template, or "" when the page has none.
func (p Page) TemplateName() string {
	if len(p.PageType) == 0 {
		return ""
	}
	return p.PageType[0].TemplateName
}

// CmsRegion - region post as returned by the CMS
type CmsRegion struct {
	ID                int      `json:"id"`
	Status            string   `json:"status"`
	Modified          string   `json:"modified"`
	Link              string   `json:"link"`
	Title             Rendered `json:"title"`
	URLPath           string   `json:"url_path"`
	BusinessesAPIPath string   `json:"businesses_api_path"`
	PagesAPIPath      string   `json:"pages_api_path"`
	LanguageCode      string   `json:"language_code"`
	WelcomeMessage    string   `json:"welcome_message"`
	MenuOrder         *int     `json:"region_menu_order"`
	Hide              *string  `json:"hide"`
}

// Hidden - the CMS marks hidden regions with "1"
func (r CmsRegion) Hidden() bool {
	return r.Hide != nil && *r.Hide == "1"
}

// CmsBusiness - business post as returned by the CMS
type CmsBusiness struct {
	ID                   int                       `json:"id"`
	Status               string                    `json:"status"`
	Slug                 string                    `json:"slug"`
	Link                 string                    `json:"link"`
	Date                 CmsTime                   `json:"date"`
	Modified             CmsTime                   `json:"modified"`
	Title                Rendered                  `json:"title"`
	PageType             []PageType                `json:"page_type"`
	Acf                  *CmsBusinessFields        `json:"acf"`
	AddressAndCoordinate []CmsAddressAndCoordinate `json:"address_and_coordinate"`
	Taggar               []string                  `json:"taggar"`
	Transaktionsform     []string                  `json:"transaktionsform"`
	Huvudtaggar          []string                  `json:"huvudtaggar"`
	Subtaggar            []string                  `json:"subtaggar"`
	VisibleForRegions    []int                     `json:"visible_for_regions"`
}

// AllTags merges the free, transaction, main and sub tags in that order.
func (b CmsBusiness) AllTags() []string {
	tags := make([]string, 0, len(b.Taggar)+len(b.Transaktionsform)+len(b.Huvudtaggar)+len(b.Subtaggar))
	tags = append(tags, b.Taggar...)
	tags = append(tags, b.Transaktionsform...)
	tags = append(tags, b.Huvudtaggar...)
	tags = append(tags, b.Subtaggar...)
	return tags
}

// CmsBusinessFields - advanced custom fields of a business post
type CmsBusinessFields struct {
	City                 []int      `json:"city"`
	PageType             []int      `json:"page_type"`
	ShortDescription     string     `json:"short_description"`
	Description          string     `json:"description"`
	HideOpeningHours     *bool      `json:"hide_opening_hours"`
	AlwaysOpen           *bool      `json:"always_open"`
	TextForOpeningHours  string     `json:"text_for_opening_hours"`
	ClosedOnMonday       *bool      `json:"closed_on_monday"`
	OpeningHourMonday    *TimeOfDay `json:"opening_hour_monday"`
	ClosingHourMonday    *TimeOfDay `json:"closing_hour_monday"`
	ClosedOnTuesday      *bool      `json:"closed_on_tuesday"`
	OpeningHourTuesday   *TimeOfDay `json:"opening_hour_tuesday"`
	ClosingHourTuesday   *TimeOfDay `json:"closing_hour_tuesday"`
	ClosedOnWednesday    *bool      `json:"closed_on_wednesday"`
	OpeningHourWednesday *TimeOfDay `json:"opening_hour_wednesday"`
	ClosingHourWednesday *TimeOfDay `json:"closing_hour_wednesday"`
	ClosedOnThursday     *bool      `json:"closed_on_thursday"`
	OpeningHourThursday  *TimeOfDay `json:"opening_hour_thursday"`
	ClosingHourThursday  *TimeOfDay `json:"closing_hour_thursday"`
	ClosedOnFriday       *bool      `json:"closed_on_friday"`
	OpeningHourFriday    *TimeOfDay `json:"opening_hour_friday"`
	ClosingHourFriday    *TimeOfDay `json:"closing_hour_friday"`
	ClosedOnSaturday     *bool      `json:"closed_on_saturday"`
	OpeningHourSaturday  *TimeOfDay `json:"opening_hour_saturday"`
	ClosingHourSaturday  *TimeOfDay `json:"closing_hour_saturday"`
	ClosedOnSunday       *bool      `json:"closed_on_sunday"`
	OpeningHourSunday    *TimeOfDay `json:"opening_hour_sunday"`
	ClosingHourSunday    *TimeOfDay `json:"closing_hour_sunday"`
	Area                 string     `json:"area"`
	InstagramUsername    string     `json:"instagram_username"`
	FacebookURL          string     `json:"facebook_url"`
	WebsiteURL           string     `json:"website_url"`
	OnlineOnly           string     `json:"online_only"`
	Email                string     `json:"email"`
	Phone                *int64     `json:"phone"`
	MainImage            *CmsImage  `json:"main_image"`
}

// IsOnlineOnly - the CMS sends the flag as "1" or "true"
func (f *CmsBusinessFields) IsOnlineOnly() bool {
	return f != nil && (f.OnlineOnly == "1" || f.OnlineOnly == "true")
}

// CityID returns the first linked region id, or NoContentID.
func (f *CmsBusinessFields) CityID() int {
	if f == nil || len(f.City) == 0 {
		return NoContentID
	}
	return f.City[0]
}

// OpeningHours copies the per-weekday hours into the indexed record.
func (f *CmsBusinessFields) OpeningHours() *OpeningHours {
	if f == nil {
		return &OpeningHours{}
	}
	return &OpeningHours{
		HideOpeningHours:     f.HideOpeningHours,
		AlwaysOpen:           f.AlwaysOpen,
		TextForOpeningHours:  f.TextForOpeningHours,
		ClosedOnMonday:       f.ClosedOnMonday,
		OpeningHourMonday:    f.OpeningHourMonday,
		ClosingHourMonday:    f.ClosingHourMonday,
		ClosedOnTuesday:      f.ClosedOnTuesday,
		OpeningHourTuesday:   f.OpeningHourTuesday,
		ClosingHourTuesday:   f.ClosingHourTuesday,
		ClosedOnWednesday:    f.ClosedOnWednesday,
		OpeningHourWednesday: f.OpeningHourWednesday,
		ClosingHourWednesday: f.ClosingHourWednesday,
		ClosedOnThursday:     f.ClosedOnThursday,
		OpeningHourThursday:  f.OpeningHourThursday,
		ClosingHourThursday:  f.ClosingHourThursday,
		ClosedOnFriday:       f.ClosedOnFriday,
		OpeningHourFriday:    f.OpeningHourFriday,
		ClosingHourFriday:    f.ClosingHourFriday,
		ClosedOnSaturday:     f.ClosedOnSaturday,
		OpeningHourSaturday:  f.OpeningHourSaturday,
		ClosingHourSaturday:  f.ClosingHourSaturday,
		ClosedOnSunday:       f.ClosedOnSunday,
		OpeningHourSunday:    f.OpeningHourSunday,
		ClosingHourSunday:    f.ClosingHourSunday,
	}
}

// CmsImage - ACF image field
type CmsImage struct {
	ID    int           `json:"id"`
	URL   string        `json:"url"`
	Alt   string        `json:"alt"`
	Sizes CmsImageSizes `json:"sizes"`
}

type CmsImageSizes struct {
	Thumbnail   string `json:"thumbnail"`
	Medium      string `json:"medium"`
	MediumLarge string `json:"medium_large"`
	Large       string `json:"large"`
}

type CmsAddressAndCoordinate struct {
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PostTitle string  `json:"post_title"`
}

// CmsTime - WordPress "2006-01-02T15:04:05" timestamp without zone
type CmsTime struct {
	time.Time
}

const cmsTimeLayout = "2006-01-02T15:04:05"

func (t *CmsTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(cmsTimeLayout, s)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func (t CmsTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(cmsTimeLayout))
}

// CmsTag - tag post
type CmsTag struct {
	ID     int      `json:"id"`
	Link   string   `json:"link"`
	Title  Rendered `json:"title"`
	Slug   string   `json:"slug"`
	Status string   `json:"status"`
	Grupp  *int     `json:"grupp"`
}

// TagGroup - groups tag ids into main, sub and transaction categories
type TagGroup struct {
	ID     int      `json:"id"`
	Link   string   `json:"link"`
	Title  Rendered `json:"title"`
	Slug   string   `json:"slug"`
	Status string   `json:"status"`
	Taggar []int    `json:"taggar"`
}

// FindTagGroup returns the group with the given slug.
func FindTagGroup(groups []TagGroup, slug string) (TagGroup, bool) {
	for _, g := range groups {
		if g.Slug == slug {
			return g, true
		}
	}
	return TagGroup{}, false
}

// Translation - UI text keyed by its title
type Translation struct {
	ID              int      `json:"id"`
	Status          string   `json:"status"`
	Link            string   `json:"link"`
	Title           Rendered `json:"title"`
	TranslationText string   `json:"translation_text"`
	LanguageCode    string   `json:"languageCode"`
}

// Media - uploaded media item
type Media struct {
	ID           int          `json:"id"`
	Description  Rendered     `json:"description"`
	AltText      string       `json:"alt_text"`
	MediaDetails MediaDetails `json:"media_details"`
	Title        Rendered     `json:"title"`
}

type MediaDetails struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	File   string               `json:"file"`
	Sizes  map[string]MediaSize `json:"sizes"`
}

type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

// Size returns the named rendition, if present.
func (m Media) Size(name string) (MediaSize, bool) {
	s, ok := m.MediaDetails.Sizes[name]
	return s, ok
}

// WebhookPost - payload sent by the CMS webhook plugin
type WebhookPost struct {
	PostID int `json:"post_id"`
	Post   struct {
		PostType   string `json:"post_type"`
		PostStatus string `json:"post_status"`
	} `json:"post"`
	PostMeta struct {
		City []string `json:"city"`
	} `json:"post_meta"`
}

// Trashed reports whether the post was moved to trash.
func (p WebhookPost) Trashed() bool {
	return p.Post.PostStatus == "trash"
}

var quotedValue = regexp.MustCompile(`".*?"`)

// CityID parses the first city meta value. The plugin sends it PHP-serialized,
// e.g. `a:1:{i:0;s:2:"12";}`; the first quoted value is the id.
func (p WebhookPost) CityID() int {
	if len(p.PostMeta.City) == 0 {
		return NoContentID
	}
	raw := strings.Trim(quotedValue.FindString(p.PostMeta.City[0]), `"`)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return NoContentID
	}
	return id
}
