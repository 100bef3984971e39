// Package docs SmartMap API.
//
// Бэкенд каталога SmartMap: разрешение URL сайта в регион, язык и страницу,
// фасетный поиск организаций, прокси к WordPress CMS и синхронизация
// поискового индекса по вебхукам CMS.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- application/xml
//	- text/plain
//
//	SecurityDefinitions:
//	ApiKeyAuth:
//	     type: apiKey
//	     name: SK-ApiKey
//	     in: header
//	WebhookKeyAuth:
//	     type: apiKey
//	     name: x-wp-webhook-key
//	     in: header
//
// swagger:meta
package docs

//go:generate swag init -d ../ -g cmd/api/main.go -o . --parseInternal --outputTypes go
