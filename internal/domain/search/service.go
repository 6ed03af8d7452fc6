package search

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const DefaultLimit = 20

type Service struct {
	repo  Repository
	files *upload.Handler
	limit int
}

func NewService(repo Repository, files *upload.Handler, limitPerSource int) *Service {
	if limitPerSource <= 0 {
		limitPerSource = DefaultLimit
	}
	return &Service{repo: repo, files: files, limit: limitPerSource}
}

// Search runs a case-insensitive substring match against every source
// concurrently and concatenates the hits in Sources order.
// A blank query returns an empty result without touching the database.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	result := &Result{Query: query, Results: []*Item{}}

	term := strings.TrimSpace(query)
	if term == "" {
		return result, nil
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	perSource := make([][]*Row, len(Sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range Sources {
		g.Go(func() error {
			start := time.Now()
			rows, err := s.repo.Search(gctx, source, pattern, s.limit)
			metrics.ObserveSearch(string(source), time.Since(start))
			if err != nil {
				return err
			}
			perSource[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, rows := range perSource {
		for _, row := range rows {
			result.Results = append(result.Results, itemFromRow(Sources[i], row, s.files))
		}
	}
	result.Total = len(result.Results)

	logger.FromContext(ctx).Debug().
		Str("query", term).
		Int("total", result.Total).
		Msg("Search completed")
	return result, nil
}

// escapeLike makes %, _ and \ in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
