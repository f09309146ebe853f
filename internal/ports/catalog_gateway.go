package ports

import (
	"context"

	"github.com/bnema/recitebot/internal/domain"
)

type CatalogGateway interface {
	ListReciters(ctx context.Context) ([]domain.Reciter, error)
	ListChapters(ctx context.Context) ([]domain.Chapter, error)
	ResolveAudio(ctx context.Context, reciterID domain.ReciterID, chapterID int) (domain.AudioRef, error)
}
