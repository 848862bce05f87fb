package promo

import (
	"context"
	"fmt"

	"pikalba/internal/repository"

	"github.com/rs/zerolog"
)

// Importer seeds the promo-code collection from seed files. Codes already
// present in the store are left untouched, so re-running the import is safe.
type Importer struct {
	promoRepo repository.PromoRepository
	loader    Loader
	logger    zerolog.Logger
}

// NewImporter creates a new promo importer.
func NewImporter(promoRepo repository.PromoRepository, loader Loader, logger zerolog.Logger) *Importer {
	return &Importer{
		promoRepo: promoRepo,
		loader:    loader,
		logger:    logger.With().Str("component", "promo-importer").Logger(),
	}
}

// Import loads every seed file and persists the promos it does not already
// have. It returns the number of promos created.
func (i *Importer) Import(ctx context.Context, filePaths []string) (int, error) {
	created := 0

	for _, path := range filePaths {
		promos, err := i.loader.Load(ctx, path)
		if err != nil {
			return created, fmt.Errorf("failed to load promo seed %s: %w", path, err)
		}

		for idx := range promos {
			p := &promos[idx]
			p.Normalize()

			if err := p.Validate(); err != nil {
				i.logger.Warn().
					Err(err).
					Str("file", path).
					Str("code", p.Code).
					Msg("skipping invalid promo document")
				continue
			}

			exists, err := i.promoRepo.Exists(ctx, p.Code)
			if err != nil {
				return created, fmt.Errorf("failed to check promo %s: %w", p.Code, err)
			}
			if exists {
				i.logger.Debug().Str("code", p.Code).Msg("promo already seeded")
				continue
			}

			if _, err := i.promoRepo.Create(ctx, p); err != nil {
				return created, fmt.Errorf("failed to seed promo %s: %w", p.Code, err)
			}
			created++
		}
	}

	i.logger.Info().
		Int("created", created).
		Int("files", len(filePaths)).
		Msg("promo seed import completed")

	return created, nil
}
