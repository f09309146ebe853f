package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Dispatcher is the single entry point for inbound events. Events of one user
// are handled one at a time under the session store's per-user lock,
// transport calls included.
type Dispatcher struct {
	sessions  ports.SessionStore
	navigator *Navigator
	renderer  ports.Renderer
	logger    *log.Logger
}

func NewDispatcher(sessions ports.SessionStore, navigator *Navigator, renderer ports.Renderer, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Dispatcher{
		sessions:  sessions,
		navigator: navigator,
		renderer:  renderer,
		logger:    logger,
	}
}

// Dispatch handles one event end to end. The returned error only reports
// transport failures; handling errors are logged and already rendered.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	logger := d.logger.With("event_id", ev.ID, "user_id", ev.UserID)
	logger.Debug("event received", "kind", ev.Kind, "command", ev.Command, "data", ev.Data)

	err := d.sessions.Do(ctx, ev.UserID, func(state *domain.SessionState) error {
		before := state.Screen
		resp := d.navigator.Handle(ctx, state, ev)
		if resp.Err != nil {
			logger.Warn("event not fully handled", "err", resp.Err)
		}
		if state.Screen != before {
			logger.Debug("screen changed", "from", before, "to", state.Screen)
		}

		return d.apply(ctx, ev, resp.Replies)
	})
	if err != nil {
		logger.Error("dispatch event", "err", err)
		return fmt.Errorf("dispatch event %s: %w", ev.ID, err)
	}

	return nil
}

func (d *Dispatcher) apply(ctx context.Context, ev domain.Event, replies []Reply) error {
	var errs []error
	acked := false

	for _, reply := range replies {
		switch reply.Kind {
		case ReplySend:
			if _, err := d.renderer.SendText(ctx, ev.ChatID, reply.Text, reply.Keyboard); err != nil {
				errs = append(errs, fmt.Errorf("send text: %w", err))
			}
		case ReplyEdit:
			if ev.Origin.IsZero() {
				if _, err := d.renderer.SendText(ctx, ev.ChatID, reply.Text, reply.Keyboard); err != nil {
					errs = append(errs, fmt.Errorf("send text: %w", err))
				}
				continue
			}
			if err := d.renderer.EditText(ctx, ev.Origin, reply.Text, reply.Keyboard); err != nil {
				errs = append(errs, fmt.Errorf("edit text: %w", err))
			}
		case ReplyDelete:
			if ev.Origin.IsZero() {
				continue
			}
			if err := d.renderer.DeleteMessage(ctx, ev.Origin); err != nil {
				errs = append(errs, fmt.Errorf("delete message: %w", err))
			}
		case ReplyNotice:
			if ev.CallbackID == "" {
				if _, err := d.renderer.SendText(ctx, ev.ChatID, reply.Text, nil); err != nil {
					errs = append(errs, fmt.Errorf("send notice: %w", err))
				}
				continue
			}
			if acked {
				continue
			}
			acked = true
			if err := d.renderer.Notify(ctx, ev.CallbackID, reply.Text, reply.Alert); err != nil {
				errs = append(errs, fmt.Errorf("notify: %w", err))
			}
		}
	}

	// Every button press is answered exactly once.
	if ev.CallbackID != "" && !acked {
		if err := d.renderer.Notify(ctx, ev.CallbackID, "", false); err != nil {
			errs = append(errs, fmt.Errorf("acknowledge callback: %w", err))
		}
	}

	return errors.Join(errs...)
}
