package service

import (
	"context"
	"fmt"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// statsConcurrency bounds the per-category count requests
const statsConcurrency = 4

// CategoryCount is the number of words in one category
type CategoryCount struct {
	Category domain.Category
	Words    int
}

// Stats summarizes the catalogue for the settings view
type Stats struct {
	TotalWords int
	Categories []CategoryCount
}

// StatsService handles catalogue statistics
type StatsService struct {
	store  repository.WordStore
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store repository.WordStore, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// Summary counts all words and the words of each category.
// Counts come from the total_count of one-word pages.
func (s *StatsService) Summary(ctx context.Context) (*Stats, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	stats := &Stats{Categories: make([]CategoryCount, len(categories))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)

	g.Go(func() error {
		page, err := s.store.ListWords(gctx, 1, 1, nil)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		stats.TotalWords = page.TotalCount
		return nil
	})

	for i, c := range categories {
		g.Go(func() error {
			id := c.ID
			page, err := s.store.ListWords(gctx, 1, 1, &id)
			if err != nil {
				return fmt.Errorf("count category %d: %w", c.ID, err)
			}
			stats.Categories[i] = CategoryCount{Category: c, Words: page.TotalCount}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("Failed to build stats", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Stats built",
		zap.Int("total_words", stats.TotalWords),
		zap.Int("categories", len(stats.Categories)),
	)
	return stats, nil
}
