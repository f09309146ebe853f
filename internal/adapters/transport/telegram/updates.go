package telegram

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const DefaultPollTimeout = 60

// Handler receives translated events. Errors are already logged by the
// handler; the poller ignores them.
type Handler func(ctx context.Context, ev domain.Event) error

type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Poller long-polls for updates and hands every update to its own goroutine,
// so slow handling for one user never holds up another.
type Poller struct {
	source      updateSource
	pollTimeout int
	logger      *log.Logger
}

func NewPoller(source updateSource, pollTimeout int, logger *log.Logger) *Poller {
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Poller{source: source, pollTimeout: pollTimeout, logger: logger}
}

// Run blocks until ctx is done or the update channel closes, then waits for
// in-flight handlers. Handlers run detached from ctx cancellation so a
// shutdown does not cut a reply in half.
func (p *Poller) Run(ctx context.Context, handle Handler) error {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = p.pollTimeout
	updates := p.source.GetUpdatesChan(config)

	handlerCtx := context.WithoutCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			p.source.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			ev, ok := EventFromUpdate(update)
			if !ok {
				p.logger.Debug("ignoring update", "update_id", update.UpdateID)
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = handle(handlerCtx, ev)
			}()
		}
	}
}

// EventFromUpdate translates commands and button presses. Anything else,
// including plain text and updates without a sender, is ignored.
func EventFromUpdate(update tgbotapi.Update) (domain.Event, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.From == nil {
			return domain.Event{}, false
		}

		ev := domain.Event{
			Kind:       domain.EventButton,
			Data:       cb.Data,
			UserID:     cb.From.ID,
			ChatID:     cb.From.ID,
			CallbackID: cb.ID,
		}
		if cb.Message != nil && cb.Message.Chat != nil {
			ev.ChatID = cb.Message.Chat.ID
			ev.Origin = domain.MessageRef{ChatID: cb.Message.Chat.ID, MessageID: cb.Message.MessageID}
		}
		return ev, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil || !msg.IsCommand() {
		return domain.Event{}, false
	}

	return domain.Event{
		Kind:    domain.EventCommand,
		Command: strings.ToLower(msg.Command()),
		UserID:  msg.From.ID,
		ChatID:  msg.Chat.ID,
	}, true
}
