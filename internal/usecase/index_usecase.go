package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/pkg/errors"
	"github.com/smartmap-web/internal/usecase/dto"
)

// Имена вебхуков из заголовка x-wp-webhook-name
const (
	WebhookPostCreate = "post_create"
	WebhookPostUpdate = "post_update"
	WebhookPostDelete = "post_delete"
)

const (
	// minSyncedBusinesses - меньше этого числа индекс не перезаписывается
	minSyncedBusinesses = 3
	// businessFetchConcurrency - параллельные загрузки бизнесов из CMS
	businessFetchConcurrency = 4
)

// IndexUseCase - синхронизация поискового индекса с CMS
type IndexUseCase struct {
	content    repository.ContentRepository
	businesses repository.BusinessRepository
	regions    repository.RegionRepository
	tags       repository.TagRepository
	stream     repository.StreamRepository
	cmsBaseURL string
	logger     *zap.Logger
}

// NewIndexUseCase создает новый IndexUseCase. stream может быть nil: тогда
// пересинхронизация бизнесов после изменения региона выполняется сразу.
func NewIndexUseCase(
	content repository.ContentRepository,
	businesses repository.BusinessRepository,
	regions repository.RegionRepository,
	tags repository.TagRepository,
	stream repository.StreamRepository,
	cmsBaseURL string,
	logger *zap.Logger,
) *IndexUseCase {
	return &IndexUseCase{
		content:    content,
		businesses: businesses,
		regions:    regions,
		tags:       tags,
		stream:     stream,
		cmsBaseURL: cmsBaseURL,
		logger:     logger,
	}
}

func validatePost(post domain.WebhookPost, requireType bool) error {
	if post.PostID <= 0 {
		return errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("post id null. post_id: %d", post.PostID))
	}
	if requireType && post.Post.PostType == "" {
		return errors.ErrInvalidRequest.WithMessage("post type empty or null.")
	}
	return nil
}

func requireWebhookName(got, want string) error {
	if got != want {
		return errors.ErrInvalidRequest.WithMessage("no webhook name provided.")
	}
	return nil
}

func syncFailed(message string, err error) error {
	return errors.ErrIndexSyncFailed.WithMessage(message).WithDetails(map[string]interface{}{"cause": err.Error()})
}

// fetchBusiness загружает пост бизнеса из api path региона, указанного в post_meta.city
func (uc *IndexUseCase) fetchBusiness(ctx context.Context, post domain.WebhookPost) (*domain.Business, error) {
	mc, err := loadMappingContext(ctx, uc.content, uc.cmsBaseURL)
	if err != nil {
		return nil, err
	}

	apiPath := domain.DefaultBusinessAPIPath
	if region, ok := mc.region(post.CityID()); ok && region.BusinessesAPIPath != "" {
		apiPath = region.BusinessesAPIPath
	} else {
		uc.logger.Warn("Business region not found, using default business api path",
			zap.Int("post_id", post.PostID),
			zap.Int("city_id", post.CityID()))
	}

	cmsBusiness, err := uc.content.GetBusiness(ctx, post.PostID, apiPath)
	if err != nil {
		return nil, fmt.Errorf("get business %d: %w", post.PostID, err)
	}
	if cmsBusiness == nil {
		return nil, errors.ErrNotFound.WithMessage(fmt.Sprintf("business %d not found in CMS", post.PostID))
	}

	business, err := mc.business(*cmsBusiness)
	if err != nil {
		uc.logger.Error("Failed to map business", zap.Int("post_id", post.PostID), zap.Error(err))
		return nil, syncFailed("Failed to map business.", err)
	}
	return &business, nil
}

// BusinessInsert - вебхук post_create для бизнеса
func (uc *IndexUseCase) BusinessInsert(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, true); err != nil {
		return nil, err
	}
	if err := requireWebhookName(req.Name, WebhookPostCreate); err != nil {
		return nil, err
	}

	business, err := uc.fetchBusiness(ctx, req.Post)
	if err != nil {
		return nil, err
	}

	if err := uc.businesses.Insert(ctx, []domain.Business{*business}); err != nil {
		uc.logger.Error("Failed to insert business", zap.Int("post_id", business.ID), zap.Error(err))
		return nil, syncFailed("Failed to insert business.", err)
	}

	uc.logger.Info("Business inserted to index", zap.Int("post_id", business.ID))
	return &dto.WebhookResult{Outcome: dto.OutcomeCreated, ID: business.ID, Document: business}, nil
}

// BusinessUpdate - вебхук post_update; пост в корзине удаляется из индекса,
// отсутствующий в индексе добавляется
func (uc *IndexUseCase) BusinessUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, true); err != nil {
		return nil, err
	}
	if err := requireWebhookName(req.Name, WebhookPostUpdate); err != nil {
		return nil, err
	}

	if req.Post.Trashed() {
		if err := uc.businesses.Delete(ctx, req.Post.PostID); err != nil {
			uc.logger.Error("Failed to delete business", zap.Int("post_id", req.Post.PostID), zap.Error(err))
			return nil, syncFailed("Failed to delete business.", err)
		}
		return &dto.WebhookResult{Outcome: dto.OutcomeDeleted, ID: req.Post.PostID}, nil
	}

	business, err := uc.fetchBusiness(ctx, req.Post)
	if err != nil {
		return nil, err
	}

	result, err := upsert[domain.Business](ctx, uc.businesses, *business)
	if err != nil {
		uc.logger.Error("Failed to update business", zap.Int("post_id", business.ID), zap.Error(err))
		return nil, syncFailed("Failed to update business.", err)
	}

	uc.logger.Info("Business updated in index", zap.Int("post_id", business.ID), zap.String("outcome", string(result.Outcome)))
	return result, nil
}

// BusinessRemove - вебхук post_delete
func (uc *IndexUseCase) BusinessRemove(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, false); err != nil {
		return nil, err
	}
	if err := requireWebhookName(req.Name, WebhookPostDelete); err != nil {
		return nil, err
	}

	if err := uc.businesses.Delete(ctx, req.Post.PostID); err != nil {
		uc.logger.Error("Failed to delete business", zap.Int("post_id", req.Post.PostID), zap.Error(err))
		return nil, syncFailed("Failed to delete business.", err)
	}

	uc.logger.Info("Business removed from index", zap.Int("post_id", req.Post.PostID))
	return &dto.WebhookResult{Outcome: dto.OutcomeDeleted, ID: req.Post.PostID}, nil
}

// SyncBusinesses перезаписывает индекс бизнесов постами всех регионов.
// Загрузка идёт параллельно по api path; индекс не трогается, если удалось
// преобразовать меньше трёх бизнесов.
func (uc *IndexUseCase) SyncBusinesses(ctx context.Context) (*dto.SyncResult, error) {
	uc.logger.Info("Start re-syncing all businesses")

	regions, err := uc.regions.GetAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(regions))
	seen := make(map[string]bool)
	for _, r := range regions {
		if r.BusinessesAPIPath == "" || seen[r.BusinessesAPIPath] {
			continue
		}
		seen[r.BusinessesAPIPath] = true
		paths = append(paths, r.BusinessesAPIPath)
	}

	fetched := make([][]domain.CmsBusiness, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(businessFetchConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			items, err := uc.content.GetBusinesses(gctx, path)
			if err != nil {
				return fmt.Errorf("get businesses of %s: %w", path, err)
			}
			fetched[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.CmsBusiness
	for _, items := range fetched {
		all = append(all, items...)
	}
	if len(all) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No businesses to index.")
	}

	mc, err := loadMappingContext(ctx, uc.content, uc.cmsBaseURL)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Business, 0, len(all))
	for _, m := range all {
		b, err := mc.business(m)
		if err != nil {
			uc.logger.Warn("Skipping business that could not be mapped", zap.Int("post_id", m.ID), zap.Error(err))
			continue
		}
		docs = append(docs, b)
	}

	if len(docs) < minSyncedBusinesses {
		uc.logger.Warn("Too few businesses mapped, keeping current index", zap.Int("count", len(docs)))
		return nil, errors.ErrIndexSyncFailed.WithMessage("Failed to fetch items.")
	}

	if err := uc.businesses.DeleteIndex(ctx); err != nil {
		uc.logger.Error("Failed to delete business index when syncing", zap.Error(err))
		return nil, syncFailed("Failed to delete index.", err)
	}

	if err := uc.businesses.Insert(ctx, docs); err != nil {
		uc.logger.Error("Insert of business list failed, business index is now empty",
			zap.Int("count", len(docs)),
			zap.Error(err))
		return nil, syncFailed("Insert of business list failed.", err)
	}

	uc.logger.Info("Re-synced all businesses", zap.Int("count", len(docs)), zap.Int("skipped", len(all)-len(docs)))
	return &dto.SyncResult{Target: domain.SyncBusinesses, Indexed: len(docs), Skipped: len(all) - len(docs)}, nil
}

// PageUpdate сбрасывает и прогревает кеш страницы и списка страниц api path
func (uc *IndexUseCase) PageUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, false); err != nil {
		return nil, err
	}
	if err := requireWebhookName(req.Name, WebhookPostUpdate); err != nil {
		return nil, err
	}

	apiPath := req.Post.Post.PostType
	if err := uc.content.RemovePageCache(ctx, req.Post.PostID); err != nil {
		return nil, err
	}
	if err := uc.refreshPages(ctx, apiPath); err != nil {
		return nil, err
	}
	if _, err := uc.content.GetPage(ctx, req.Post.PostID, apiPath); err != nil {
		return nil, err
	}

	uc.logger.Info("Cleared and renewed page cache", zap.Int("page_id", req.Post.PostID), zap.String("api_path", apiPath))
	return &dto.WebhookResult{Outcome: dto.OutcomeRefreshed, ID: req.Post.PostID}, nil
}

// TranslationsUpdate сбрасывает и прогревает кеш переводов
func (uc *IndexUseCase) TranslationsUpdate(ctx context.Context) (*dto.WebhookResult, error) {
	if err := uc.content.RemoveTranslationsCache(ctx); err != nil {
		return nil, err
	}
	translations, err := uc.content.GetTranslations(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Cleared and renewed translations cache", zap.Int("count", len(translations)))
	return &dto.WebhookResult{Outcome: dto.OutcomeRefreshed}, nil
}

// TagUpdate - вставка, обновление или удаление тега
func (uc *IndexUseCase) TagUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, false); err != nil {
		return nil, err
	}

	if req.Post.Trashed() {
		if err := uc.tags.Delete(ctx, req.Post.PostID); err != nil {
			return nil, syncFailed("Failed to delete tag.", err)
		}
		return &dto.WebhookResult{Outcome: dto.OutcomeDeleted, ID: req.Post.PostID}, nil
	}

	cmsTag, err := uc.content.GetTag(ctx, req.Post.PostID)
	if err != nil {
		return nil, err
	}
	if cmsTag == nil {
		return nil, errors.ErrNotFound.WithMessage(fmt.Sprintf("tag %d not found in CMS", req.Post.PostID))
	}

	languages, err := uc.content.GetLanguages(ctx)
	if err != nil {
		return nil, err
	}

	result, err := upsert[domain.Tag](ctx, uc.tags, mapTag(*cmsTag, languages))
	if err != nil {
		uc.logger.Error("Failed to upsert tag", zap.Int("post_id", req.Post.PostID), zap.Error(err))
		return nil, syncFailed("Failed to update tag.", err)
	}

	uc.logger.Info("Tag synced to index", zap.Int("post_id", req.Post.PostID), zap.String("outcome", string(result.Outcome)))
	return result, nil
}

// SyncTags перезаписывает индекс тегов для всех языков
func (uc *IndexUseCase) SyncTags(ctx context.Context) (*dto.SyncResult, error) {
	languages, err := uc.content.GetLanguages(ctx)
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No languages found")
	}

	if err := uc.tags.DeleteIndex(ctx); err != nil {
		return nil, syncFailed("Tags index failed to be removed.", err)
	}

	result := &dto.SyncResult{Target: domain.SyncTags}
	for _, l := range languages {
		cmsTags, err := uc.content.GetTags(ctx, l.Code)
		if err != nil {
			return nil, err
		}
		if len(cmsTags) == 0 {
			continue
		}

		docs := make([]domain.Tag, 0, len(cmsTags))
		for _, t := range cmsTags {
			docs = append(docs, mapTag(t, languages))
		}
		if err := uc.tags.Insert(ctx, docs); err != nil {
			uc.logger.Error("Failed to insert tags", zap.String("language", l.Code), zap.Int("count", len(docs)), zap.Error(err))
			result.Skipped += len(docs)
			continue
		}
		result.Indexed += len(docs)
	}

	uc.logger.Info("Re-synced tags", zap.Int("indexed", result.Indexed), zap.Int("skipped", result.Skipped))
	return result, nil
}

// RegionUpdate - вставка, обновление или удаление региона. После изменения
// региона бизнесы пересинхронизируются через стрим, кеш страниц обновляется.
func (uc *IndexUseCase) RegionUpdate(ctx context.Context, req dto.WebhookRequest) (*dto.WebhookResult, error) {
	if err := validatePost(req.Post, false); err != nil {
		return nil, err
	}

	if req.Post.Trashed() {
		if err := uc.regions.Delete(ctx, req.Post.PostID); err != nil {
			return nil, syncFailed("Failed to delete region.", err)
		}
		return &dto.WebhookResult{Outcome: dto.OutcomeDeleted, ID: req.Post.PostID}, nil
	}

	cmsRegion, err := uc.content.GetRegion(ctx, req.Post.PostID)
	if err != nil {
		return nil, err
	}
	if cmsRegion == nil {
		return nil, errors.ErrNotFound.WithMessage(fmt.Sprintf("region %d not found in CMS", req.Post.PostID))
	}

	result, err := upsert[domain.Region](ctx, uc.regions, mapRegion(*cmsRegion))
	if err != nil {
		uc.logger.Error("Failed to upsert region", zap.Int("post_id", req.Post.PostID), zap.Error(err))
		return nil, syncFailed("Failed to update region.", err)
	}

	uc.requestBusinessSync(ctx, fmt.Sprintf("region %d updated", req.Post.PostID))

	if apiPath := req.Post.Post.PostType; apiPath != "" {
		if err := uc.refreshPages(ctx, apiPath); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("Region synced to index", zap.Int("post_id", req.Post.PostID), zap.String("outcome", string(result.Outcome)))
	return result, nil
}

// SyncRegions перезаписывает индекс регионов всеми опубликованными регионами
func (uc *IndexUseCase) SyncRegions(ctx context.Context) (*dto.SyncResult, error) {
	cmsRegions, err := uc.content.GetRegions(ctx, "", true)
	if err != nil {
		return nil, err
	}
	if len(cmsRegions) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No regions to sync!")
	}

	if err := uc.regions.DeleteIndex(ctx); err != nil {
		return nil, syncFailed("Regions index failed to be removed.", err)
	}

	docs := make([]domain.Region, 0, len(cmsRegions))
	for _, r := range cmsRegions {
		docs = append(docs, mapRegion(r))
	}
	if err := uc.regions.Insert(ctx, docs); err != nil {
		uc.logger.Error("Failed to insert regions", zap.Int("count", len(docs)), zap.Error(err))
		return nil, syncFailed("Failed to insert regions.", err)
	}

	uc.logger.Info("Re-synced regions", zap.Int("count", len(docs)))
	return &dto.SyncResult{Target: domain.SyncRegions, Indexed: len(docs)}, nil
}

// HandleSyncEvent выполняет синхронизацию из события стрима
func (uc *IndexUseCase) HandleSyncEvent(ctx context.Context, event domain.IndexSyncEvent) (*dto.SyncResult, error) {
	switch event.Target {
	case domain.SyncBusinesses:
		return uc.SyncBusinesses(ctx)
	case domain.SyncTags:
		return uc.SyncTags(ctx)
	case domain.SyncRegions:
		return uc.SyncRegions(ctx)
	default:
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown sync target %q", event.Target))
	}
}

// RequestSync публикует событие синхронизации для воркера
func (uc *IndexUseCase) RequestSync(ctx context.Context, target domain.IndexSyncTarget, reason string) (*domain.IndexSyncEvent, error) {
	event := domain.NewIndexSyncEvent(target, reason)
	if !event.Valid() {
		return nil, errors.ErrInvalidRequest.WithMessage(fmt.Sprintf("unknown sync target %q", target))
	}
	if uc.stream == nil {
		return nil, errors.ErrInternalServer.WithMessage("index sync queue is not configured")
	}
	if err := uc.stream.PublishToStream(ctx, domain.StreamIndexSync, event); err != nil {
		return nil, err
	}

	uc.logger.Info("Index sync requested",
		zap.String("event_id", event.ID.String()),
		zap.String("target", string(target)),
		zap.String("reason", reason))
	return &event, nil
}

// requestBusinessSync ставит пересинхронизацию в очередь; без очереди
// выполняет её в фоне
func (uc *IndexUseCase) requestBusinessSync(ctx context.Context, reason string) {
	if uc.stream != nil {
		_, err := uc.RequestSync(ctx, domain.SyncBusinesses, reason)
		if err == nil {
			return
		}
		uc.logger.Error("Failed to enqueue business sync, running it in background", zap.Error(err))
	}

	go func() {
		if _, err := uc.SyncBusinesses(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Error("Background business sync failed", zap.Error(err))
		}
	}()
}

func (uc *IndexUseCase) refreshPages(ctx context.Context, apiPath string) error {
	if err := uc.content.RemovePagesCache(ctx, apiPath); err != nil {
		return err
	}
	if _, err := uc.content.GetPages(ctx, "", apiPath); err != nil {
		return err
	}
	return nil
}

// upsert вставляет документ, если его нет в индексе, иначе обновляет
func upsert[T domain.Document](ctx context.Context, repo repository.DocumentRepository[T], doc T) (*dto.WebhookResult, error) {
	existing, err := repo.Get(ctx, doc.DocumentID())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := repo.Insert(ctx, []T{doc}); err != nil {
			return nil, err
		}
		return &dto.WebhookResult{Outcome: dto.OutcomeCreated, ID: doc.DocumentID(), Document: doc}, nil
	}
	if err := repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return &dto.WebhookResult{Outcome: dto.OutcomeUpdated, ID: doc.DocumentID()}, nil
}
