package dto

import "github.com/smartmap-web/internal/domain"

// BusinessListResponse - страница бизнесов и фасеты тегов
type BusinessListResponse struct {
	Items        []BusinessItem `json:"items"`
	Total        int64          `json:"total"`
	ItemsPerPage int            `json:"itemsPerPage"`
	FilterTags   []TagItem      `json:"filterTags"`
}

// BusinessItem - карточка бизнеса в списке
type BusinessItem struct {
	ID                    int                           `json:"id"`
	DetailPageLink        string                        `json:"detailPageLink"`
	Header                string                        `json:"header"`
	Description           string                        `json:"description"`
	Area                  string                        `json:"area"`
	City                  string                        `json:"city"`
	OnlineOnly            bool                          `json:"onlineOnly"`
	HasImage              bool                          `json:"hasImage"`
	ImageURL              string                        `json:"imageUrl"`
	ImageHTML             string                        `json:"imageHtml"`
	ImageAlt              string                        `json:"imageAlt"`
	Tags                  []string                      `json:"tags"`
	AddressAndCoordinates []domain.AddressAndCoordinate `json:"addressAndCoordinates"`
}

// BusinessCoordinateItem - точка на карте
type BusinessCoordinateItem struct {
	ID                    int                           `json:"id"`
	DetailPageLink        string                        `json:"detailPageLink"`
	Header                string                        `json:"header"`
	Description           string                        `json:"description"`
	AddressAndCoordinates []domain.AddressAndCoordinate `json:"addressAndCoordinates"`
}

// TagItem - тег фильтра; Count и Type заполняются только для фасетов
type TagItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count,omitempty"`
	Type  string `json:"type,omitempty"`
}

type TranslationItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// WebhookOutcome - что вебхук сделал с индексом
type WebhookOutcome string

const (
	OutcomeCreated   WebhookOutcome = "created"
	OutcomeUpdated   WebhookOutcome = "updated"
	OutcomeDeleted   WebhookOutcome = "deleted"
	OutcomeRefreshed WebhookOutcome = "refreshed"
)

// WebhookResult - результат обработки вебхука; Document задан для created
type WebhookResult struct {
	Outcome  WebhookOutcome `json:"outcome"`
	ID       int            `json:"id"`
	Document interface{}    `json:"document,omitempty"`
}

// SyncResult - итог полной синхронизации индекса
type SyncResult struct {
	Target  domain.IndexSyncTarget `json:"target"`
	Indexed int                    `json:"indexed"`
	Skipped int                    `json:"skipped"`
}

// PageResponse - содержимое динамической страницы
type PageResponse struct {
	Route          domain.Route     `json:"route"`
	Title          string           `json:"title,omitempty"`
	Content        string           `json:"content,omitempty"`
	WelcomeMessage string           `json:"welcomeMessage,omitempty"`
	Page           *domain.Page     `json:"page,omitempty"`
	Business       *domain.Business `json:"business,omitempty"`
	Regions        []domain.Region  `json:"regions,omitempty"`
}
