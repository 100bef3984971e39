package domain

// Reserved handler and action names produced by route resolution.
const (
	HandlerHome  = "Home"
	HandlerError = "Error"

	ActionIndex      = "Index"
	ActionNotFound   = "Error404"
	ActionRobotsTxt  = "RobotsTxt"
	ActionSitemapXML = "SitemapXml"

	RobotsTxtSegment  = "robots.txt"
	SitemapXMLSegment = "sitemap.xml"

	// NoContentID marks a route without a concrete page or business
	NoContentID = -1
)

// RouteSegments - raw positional path segments; any of them may be empty and the
// names describe position only
type RouteSegments struct {
	Language string
	Region   string
	Page     string
}

// IsEmpty reports whether no segment was supplied.
func (s RouteSegments) IsEmpty() bool {
	return s.Language == "" && s.Region == "" && s.Page == ""
}

// Route - resolution result; request context handed explicitly to the content handler
type Route struct {
	Handler   string      `json:"handler"`
	Action    string      `json:"action"`
	ContentID int         `json:"contentId"`
	Language  string      `json:"language"`
	Region    RegionValue `json:"region"`
}

// IsNotFound reports whether the route resolved to the reserved error handler.
func (r Route) IsNotFound() bool {
	return r.Action == ActionNotFound
}
