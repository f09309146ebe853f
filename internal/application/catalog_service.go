package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/recitebot/internal/cache"
	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
)

// CatalogService serves reciter and chapter lists through the TTL cache and
// resolves audio straight from the gateway.
type CatalogService struct {
	gateway  ports.CatalogGateway
	reciters *cache.Cache[domain.Reciter]
	chapters *cache.Cache[domain.Chapter]
}

func NewCatalogService(gateway ports.CatalogGateway, opts cache.Options) *CatalogService {
	return &CatalogService{
		gateway:  gateway,
		reciters: cache.New[domain.Reciter](opts),
		chapters: cache.New[domain.Chapter](opts),
	}
}

// Reciters returns the cached reciter list. An empty list is reported as
// domain.ErrCatalogEmpty so callers can tell it apart from a failed fetch.
func (s *CatalogService) Reciters(ctx context.Context) ([]domain.Reciter, error) {
	reciters, err := s.reciters.Get(ctx, cache.KeyReciters, s.gateway.ListReciters)
	if err != nil {
		return nil, fmt.Errorf("load reciters: %w", err)
	}
	if len(reciters) == 0 {
		return nil, fmt.Errorf("load reciters: %w", domain.ErrCatalogEmpty)
	}

	return reciters, nil
}

func (s *CatalogService) Chapters(ctx context.Context) (domain.Chapters, error) {
	chapters, err := s.chapters.Get(ctx, cache.KeyChapters, s.gateway.ListChapters)
	if err != nil {
		return nil, fmt.Errorf("load chapters: %w", err)
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("load chapters: %w", domain.ErrCatalogEmpty)
	}

	return domain.Chapters(chapters), nil
}

func (s *CatalogService) ResolveAudio(ctx context.Context, reciterID domain.ReciterID, chapterID int) (domain.AudioRef, error) {
	return s.gateway.ResolveAudio(ctx, reciterID, chapterID)
}

// ReciterName looks the reciter up in whatever list is currently cached and
// falls back to the numeric ID. It never triggers a fetch.
func (s *CatalogService) ReciterName(id domain.ReciterID) string {
	if entry, ok := s.reciters.Peek(cache.KeyReciters); ok {
		for _, r := range entry.Data {
			if r.ID == id {
				return r.Name
			}
		}
	}
	return id.String()
}

// CacheStatus reports what each collection held at its last fetch.
type CacheStatus struct {
	Key       cache.Key
	Items     int
	FetchedAt time.Time
	Failed    bool
}

func (s *CatalogService) CacheStatus() []CacheStatus {
	statuses := make([]CacheStatus, 0, 2)
	if entry, ok := s.reciters.Peek(cache.KeyReciters); ok {
		statuses = append(statuses, CacheStatus{Key: cache.KeyReciters, Items: len(entry.Data), FetchedAt: entry.FetchedAt, Failed: entry.Err != nil})
	}
	if entry, ok := s.chapters.Peek(cache.KeyChapters); ok {
		statuses = append(statuses, CacheStatus{Key: cache.KeyChapters, Items: len(entry.Data), FetchedAt: entry.FetchedAt, Failed: entry.Err != nil})
	}
	return statuses
}
