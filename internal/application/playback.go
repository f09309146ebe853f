package application

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/charmbracelet/log"
)

type PlayOutcomeKind string

const (
	OutcomePlaying    PlayOutcomeKind = "playing"
	OutcomeLinkOnly   PlayOutcomeKind = "link_only"
	OutcomeUnresolved PlayOutcomeKind = "unresolved"
	OutcomeFailed     PlayOutcomeKind = "failed"
)

type PlayOutcome struct {
	Kind      PlayOutcomeKind
	ReciterID domain.ReciterID
	ChapterID int
	Audio     domain.AudioRef
	Err       error
}

type PauseOutcome string

const (
	PauseDone    PauseOutcome = "paused"
	PauseNothing PauseOutcome = "nothing_to_pause"
	PauseFailed  PauseOutcome = "failed"
)

// PlaybackController turns play decisions into media dispatches and pause into
// retraction of the dispatched item. Pause is not stream control: the item is
// deleted and enough state is kept to send it again on resume.
type PlaybackController struct {
	resolver AudioResolver
	media    ports.MediaSender
	messages Messages
	maxBytes int64
	logger   *log.Logger
}

// AudioResolver resolves recordings and display names for dispatched media.
type AudioResolver interface {
	ResolveAudio(ctx context.Context, reciterID domain.ReciterID, chapterID int) (domain.AudioRef, error)
	ReciterName(id domain.ReciterID) string
}

func NewPlaybackController(resolver AudioResolver, media ports.MediaSender, messages Messages, maxBytes int64, logger *log.Logger) *PlaybackController {
	if maxBytes <= 0 {
		maxBytes = domain.DefaultMaxDispatchBytes
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &PlaybackController{
		resolver: resolver,
		media:    media,
		messages: messages,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// PlayChapter records chapterID as selected, resolves its audio and dispatches
// it unless it is too large. The selection is kept even when playback fails.
func (p *PlaybackController) PlayChapter(ctx context.Context, state *domain.SessionState, chatID int64, reciterID domain.ReciterID, chapterID int) PlayOutcome {
	state.SelectChapter(chapterID)
	outcome := PlayOutcome{ReciterID: reciterID, ChapterID: chapterID}

	ref, err := p.resolver.ResolveAudio(ctx, reciterID, chapterID)
	if err != nil {
		p.logger.Warn("resolve audio", "reciter", reciterID, "chapter", chapterID, "err", err)
		outcome.Kind = OutcomeUnresolved
		outcome.Err = err
		return outcome
	}
	outcome.Audio = ref

	if ref.Exceeds(p.maxBytes) {
		outcome.Kind = OutcomeLinkOnly
		return outcome
	}

	handle, err := p.media.SendMedia(ctx, chatID, p.mediaFor(ref, reciterID, chapterID))
	if err != nil {
		p.logger.Error("dispatch media", "reciter", reciterID, "chapter", chapterID, "err", err)
		outcome.Err = err
		if errors.Is(err, domain.ErrMediaUnusable) {
			outcome.Kind = OutcomeLinkOnly
			return outcome
		}
		outcome.Kind = OutcomeFailed
		return outcome
	}

	state.RecordDispatch(handle)
	outcome.Kind = OutcomePlaying
	return outcome
}

// Pause retracts the dispatched media item. The handle is cleared only when
// the retraction succeeds.
func (p *PlaybackController) Pause(ctx context.Context, state *domain.SessionState) (PauseOutcome, error) {
	handle, ok := state.Dispatched()
	if !ok {
		return PauseNothing, nil
	}

	if err := p.media.DeleteMedia(ctx, handle); err != nil {
		p.logger.Error("retract media", "chat", handle.ChatID, "message", handle.MessageID, "err", err)
		return PauseFailed, err
	}

	state.ClearDispatch()
	return PauseDone, nil
}

func (p *PlaybackController) mediaFor(ref domain.AudioRef, reciterID domain.ReciterID, chapterID int) domain.Media {
	return domain.Media{
		URL:       ref.URL,
		Title:     Fill(p.messages.MediaTitle, "chapter", strconv.Itoa(chapterID)),
		Performer: Fill(p.messages.MediaPerformer, "reciter", p.resolver.ReciterName(reciterID)),
	}
}
