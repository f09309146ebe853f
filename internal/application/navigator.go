package application

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
)

type ReplyKind string

const (
	// ReplySend posts a new message in the event's chat.
	ReplySend ReplyKind = "send"
	// ReplyEdit rewrites the message the button was attached to.
	ReplyEdit ReplyKind = "edit"
	// ReplyDelete removes the message the button was attached to.
	ReplyDelete ReplyKind = "delete"
	// ReplyNotice is a transient notice answering a button press.
	ReplyNotice ReplyKind = "notice"
)

// Reply is one rendering intent. The navigator never talks to the transport;
// the dispatcher applies replies in order.
type Reply struct {
	Kind     ReplyKind
	Text     string
	Keyboard ports.Keyboard
	Alert    bool
}

// Response is what handling one event produced. Err is informational: it has
// already been turned into a user-facing reply.
type Response struct {
	Replies []Reply
	Err     error
}

type Navigator struct {
	catalog  *CatalogService
	playback *PlaybackController
	messages Messages
}

func NewNavigator(catalog *CatalogService, playback *PlaybackController, messages Messages) *Navigator {
	return &Navigator{catalog: catalog, playback: playback, messages: messages}
}

// Handle advances state for one event. Failed preconditions leave state as it
// was.
func (n *Navigator) Handle(ctx context.Context, state *domain.SessionState, ev domain.Event) Response {
	switch ev.Kind {
	case domain.EventCommand:
		return n.handleCommand(ctx, state, ev)
	case domain.EventButton:
		return n.handleButton(ctx, state, ev)
	default:
		return Response{Err: fmt.Errorf("unknown event kind %q", ev.Kind)}
	}
}

func (n *Navigator) handleCommand(ctx context.Context, state *domain.SessionState, ev domain.Event) Response {
	switch ev.Command {
	case domain.CommandStart:
		return send(n.messages.Welcome, nil)
	case domain.CommandHelp:
		return send(n.messages.Help, nil)
	case domain.CommandPlay:
		return n.showReciters(ctx, state)
	default:
		return Response{Err: fmt.Errorf("%w: %q", domain.ErrUnknownCommand, ev.Command)}
	}
}

func (n *Navigator) handleButton(ctx context.Context, state *domain.SessionState, ev domain.Event) Response {
	cb, err := domain.ParseCallback(ev.Data)
	if err != nil {
		return notice(n.messages.UnknownAction, false, err)
	}

	switch cb.Kind {
	case domain.CallbackReciter:
		return n.selectReciter(ctx, state, domain.ReciterID(cb.ID))
	case domain.CallbackChapter:
		return n.selectChapter(ctx, state, ev.ChatID, cb.ID)
	case domain.CallbackPause:
		return n.pause(ctx, state)
	case domain.CallbackResume:
		return n.resume(ctx, state, ev.ChatID)
	case domain.CallbackNext:
		return n.next(ctx, state, ev.ChatID)
	case domain.CallbackBackToChapters:
		return n.showChapters(ctx, state)
	case domain.CallbackBackToStart:
		state.Screen = mustTransition(state.Screen, domain.ActionBackToStart)
		return edit(n.messages.BackToStart, nil)
	case domain.CallbackClose:
		state.Screen = mustTransition(state.Screen, domain.ActionClose)
		return Response{Replies: []Reply{{Kind: ReplyDelete}}}
	default:
		return notice(n.messages.UnknownAction, false, fmt.Errorf("%w: %q", domain.ErrUnknownCallback, ev.Data))
	}
}

func (n *Navigator) showReciters(ctx context.Context, state *domain.SessionState) Response {
	reciters, err := n.catalog.Reciters(ctx)
	if err != nil {
		return Response{Replies: []Reply{{Kind: ReplySend, Text: n.messages.RecitersUnavailable}}, Err: err}
	}

	state.Screen = mustTransition(state.Screen, domain.ActionPlay)
	return send(n.messages.ChooseReciter, reciterKeyboard(reciters, n.messages.Buttons))
}

func (n *Navigator) selectReciter(ctx context.Context, state *domain.SessionState, id domain.ReciterID) Response {
	state.SelectReciter(id)

	chapters, err := n.catalog.Chapters(ctx)
	if err != nil {
		return notice(n.messages.ChaptersUnavailable, true, err)
	}

	state.Screen = mustTransition(state.Screen, domain.ActionSelectReciter)
	return edit(n.messages.ChooseChapter, chapterKeyboard(chapters, n.messages.Buttons))
}

func (n *Navigator) showChapters(ctx context.Context, state *domain.SessionState) Response {
	chapters, err := n.catalog.Chapters(ctx)
	if err != nil {
		return notice(n.messages.ChaptersUnavailable, true, err)
	}

	state.Screen = mustTransition(state.Screen, domain.ActionBackToChapters)
	return edit(n.messages.ChooseChapter, chapterKeyboard(chapters, n.messages.Buttons))
}

func (n *Navigator) selectChapter(ctx context.Context, state *domain.SessionState, chatID int64, chapterID int) Response {
	reciterID, ok := state.Reciter()
	if !ok {
		return notice(n.messages.ReciterRequired, true, domain.ErrReciterNotSelected)
	}

	outcome := n.playback.PlayChapter(ctx, state, chatID, reciterID, chapterID)
	return n.playResponse(state, outcome, "")
}

func (n *Navigator) pause(ctx context.Context, state *domain.SessionState) Response {
	if _, err := domain.Transition(state.Screen, domain.ActionPause); err != nil {
		return notice(n.messages.NothingPlaying, true, fmt.Errorf("%w: %w", domain.ErrNothingPlaying, err))
	}

	outcome, err := n.playback.Pause(ctx, state)
	switch outcome {
	case PauseNothing:
		return notice(n.messages.NothingToPause, true, nil)
	case PauseFailed:
		return notice(n.messages.PauseFailed, true, fmt.Errorf("pause: %w", err))
	default:
		state.Screen = mustTransition(state.Screen, domain.ActionPause)
		return notice(n.messages.Paused, true, nil)
	}
}

func (n *Navigator) resume(ctx context.Context, state *domain.SessionState, chatID int64) Response {
	if _, err := domain.Transition(state.Screen, domain.ActionResume); err != nil {
		return notice(n.messages.NothingPlaying, true, fmt.Errorf("%w: %w", domain.ErrNothingPlaying, err))
	}
	if _, ok := state.Dispatched(); ok {
		return notice(n.messages.AlreadyPlaying, true, nil)
	}

	reciterID, hasReciter := state.Reciter()
	chapterID, hasChapter := state.Chapter()
	if !hasReciter || !hasChapter {
		return notice(n.messages.NothingPlaying, true, domain.ErrNothingPlaying)
	}

	outcome := n.playback.PlayChapter(ctx, state, chatID, reciterID, chapterID)
	return n.playResponse(state, outcome, n.messages.Resumed)
}

func (n *Navigator) next(ctx context.Context, state *domain.SessionState, chatID int64) Response {
	if _, err := domain.Transition(state.Screen, domain.ActionNext); err != nil {
		return notice(n.messages.NothingPlaying, true, fmt.Errorf("%w: %w", domain.ErrNothingPlaying, err))
	}

	reciterID, ok := state.Reciter()
	if !ok {
		return notice(n.messages.ReciterRequired, true, domain.ErrReciterNotSelected)
	}

	chapters, err := n.catalog.Chapters(ctx)
	if err != nil {
		return notice(n.messages.ChaptersUnavailable, true, err)
	}

	current, _ := state.Chapter()
	nextChapter, ok := chapters.NextAfter(current)
	if !ok {
		return notice(n.messages.NoNextChapter, true, domain.ErrNoNextChapter)
	}

	outcome := n.playback.PlayChapter(ctx, state, chatID, reciterID, nextChapter.ID)
	return n.playResponse(state, outcome, n.messages.NextPlaying)
}

// playResponse maps a playback outcome onto replies. successNotice, when set,
// is shown in addition to the now-playing text.
func (n *Navigator) playResponse(state *domain.SessionState, outcome PlayOutcome, successNotice string) Response {
	chapter := strconv.Itoa(outcome.ChapterID)
	reciter := n.catalog.ReciterName(outcome.ReciterID)

	switch outcome.Kind {
	case OutcomePlaying:
		state.Screen = mustTransition(state.Screen, domain.ActionSelectChapter)
		resp := edit(Fill(n.messages.NowPlaying, "chapter", chapter, "reciter", reciter), controlsKeyboard(n.messages.Buttons))
		if successNotice != "" {
			resp.Replies = append(resp.Replies, Reply{Kind: ReplyNotice, Text: successNotice, Alert: true})
		}
		return resp
	case OutcomeLinkOnly:
		state.Screen = mustTransition(state.Screen, domain.ActionSelectChapter)
		text := Fill(n.messages.TooLarge, "size", outcome.Audio.HumanSize(), "url", outcome.Audio.URL)
		if outcome.Err != nil {
			text = Fill(n.messages.MediaUnusable, "url", outcome.Audio.URL)
		}
		resp := edit(text, controlsKeyboard(n.messages.Buttons))
		resp.Err = outcome.Err
		return resp
	case OutcomeUnresolved:
		return notice(n.messages.AudioUnresolved, true, outcome.Err)
	default:
		return notice(n.messages.PlayFailed, true, outcome.Err)
	}
}

// mustTransition applies an action that is valid from every screen the
// navigator can be in. An unknown screen is reset to idle.
func mustTransition(current domain.Screen, action domain.Action) domain.Screen {
	next, err := domain.Transition(current, action)
	if err != nil {
		next, _ = domain.Transition(domain.ScreenIdle, action)
	}
	return next
}

func send(text string, keyboard ports.Keyboard) Response {
	return Response{Replies: []Reply{{Kind: ReplySend, Text: text, Keyboard: keyboard}}}
}

func edit(text string, keyboard ports.Keyboard) Response {
	return Response{Replies: []Reply{{Kind: ReplyEdit, Text: text, Keyboard: keyboard}}}
}

func notice(text string, alert bool, err error) Response {
	return Response{Replies: []Reply{{Kind: ReplyNotice, Text: text, Alert: alert}}, Err: err}
}
