package ports

import (
	"context"

	"github.com/bnema/recitebot/internal/domain"
)

type Button struct {
	Text string
	Data string
}

// Keyboard is a grid of inline buttons, one slice per row.
type Keyboard [][]Button

type Renderer interface {
	SendText(ctx context.Context, chatID int64, text string, keyboard Keyboard) (domain.MessageRef, error)
	EditText(ctx context.Context, target domain.MessageRef, text string, keyboard Keyboard) error
	DeleteMessage(ctx context.Context, target domain.MessageRef) error
	Notify(ctx context.Context, callbackID string, text string, alert bool) error
}

// MediaSender dispatches and retracts media items. Errors caused by an
// unusable remote resource wrap domain.ErrMediaUnusable.
type MediaSender interface {
	SendMedia(ctx context.Context, chatID int64, media domain.Media) (domain.MediaHandle, error)
	DeleteMedia(ctx context.Context, handle domain.MediaHandle) error
}
