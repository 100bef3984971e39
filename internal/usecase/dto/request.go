package dto

import "github.com/smartmap-web/internal/domain"

// BusinessListRequest - параметры поиска бизнесов
type BusinessListRequest struct {
	Page            int                    `json:"page" validate:"min=0,max=10000"`
	Query           string                 `json:"query" validate:"max=200"`
	Tags            []string               `json:"tags" validate:"max=50,dive,max=100"`
	TransactionTags []string               `json:"transactionTags" validate:"max=50,dive,max=100"`
	Region          string                 `json:"region" validate:"max=100"`
	Lang            string                 `json:"lang" validate:"omitempty,len=2,alpha"`
	Digital         bool                   `json:"digital"`
	OpenNow         bool                   `json:"openNow"`
	RandomSeed      int64                  `json:"randomSeed"`
	Sorting         domain.BusinessSorting `json:"sorting" validate:"min=0,max=5"`
}

// LanguageRequest - запрос с необязательным кодом языка
type LanguageRequest struct {
	Lang string `json:"lang" validate:"omitempty,len=2,alpha"`
}

// WebhookRequest - тело вебхука CMS вместе с заголовком x-wp-webhook-name
type WebhookRequest struct {
	Name string
	Post domain.WebhookPost
}
