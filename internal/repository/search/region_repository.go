package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/repository"
)

// RegionRepository - regions index
type RegionRepository struct {
	*Repository[domain.Region]
}

var _ repository.RegionRepository = (*RegionRepository)(nil)

func NewRegionRepository(store repository.DocumentStore, index string, maxSize int, logger *zap.Logger) *RegionRepository {
	return &RegionRepository{Repository: NewRepository[domain.Region](store, index, maxSize, logger)}
}

// GetByLanguageCode returns the visible regions of a language, the default
// language when empty, or of every language. Regions are ordered by menu order
// then id; url paths shared by several regions are logged. An empty index
// yields nil, a language without visible regions an empty slice.
func (r *RegionRepository) GetByLanguageCode(ctx context.Context, languageCode string, allLanguages bool) ([]domain.Region, error) {
	regions, err := r.GetAll(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, nil
	}

	if languageCode == "" {
		languageCode = domain.DefaultLanguageCode
	}

	visible := make([]domain.Region, 0, len(regions))
	for _, region := range regions {
		if region.Hidden {
			continue
		}
		if !allLanguages && region.LanguageCode != languageCode {
			continue
		}
		visible = append(visible, region)
	}
	domain.SortRegions(visible)

	for _, dup := range domain.ValidateUniqueURLPaths(visible) {
		r.logger.Warn("Regions share url path, resolving to the first by menu order",
			zap.String("language", dup.LanguageCode),
			zap.String("url_path", dup.URLPath),
			zap.Ints("region_ids", dup.RegionIDs))
	}

	return visible, nil
}

// GetByName returns the visible region whose name or url path equals name,
// ignoring case; nil, nil when none does.
func (r *RegionRepository) GetByName(ctx context.Context, name, languageCode string) (*domain.Region, error) {
	regions, err := r.GetByLanguageCode(ctx, languageCode, false)
	if err != nil {
		return nil, err
	}
	region, ok := domain.FindRegionByName(regions, name)
	if !ok {
		return nil, nil
	}
	return &region, nil
}
