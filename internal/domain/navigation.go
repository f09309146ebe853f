package domain

import "fmt"

type Screen string

type Action string

const (
	ScreenIdle             Screen = "idle"
	ScreenReciterSelection Screen = "reciter_selection"
	ScreenChapterSelection Screen = "chapter_selection"
	ScreenPlaying          Screen = "playing"
	ScreenPaused           Screen = "paused"
	ScreenClosed           Screen = "closed"
)

const (
	ActionPlay           Action = "play"
	ActionSelectReciter  Action = "select_reciter"
	ActionSelectChapter  Action = "select_chapter"
	ActionPause          Action = "pause"
	ActionResume         Action = "resume"
	ActionNext           Action = "next"
	ActionBackToChapters Action = "back_to_chapters"
	ActionBackToStart    Action = "back_to_start"
	ActionClose          Action = "close"
)

func (s Screen) Valid() bool {
	switch s {
	case ScreenIdle, ScreenReciterSelection, ScreenChapterSelection, ScreenPlaying, ScreenPaused, ScreenClosed:
		return true
	default:
		return false
	}
}

// Transition returns the screen reached after a successful action. Preconditions
// that depend on session data are checked by the caller; Transition only knows
// which screens an action may start from.
func Transition(current Screen, action Action) (Screen, error) {
	if !current.Valid() {
		return current, fmt.Errorf("unknown screen %q", current)
	}

	switch action {
	case ActionPlay:
		return ScreenReciterSelection, nil
	case ActionSelectReciter:
		return ScreenChapterSelection, nil
	case ActionSelectChapter:
		return ScreenPlaying, nil
	case ActionBackToChapters:
		return ScreenChapterSelection, nil
	case ActionBackToStart:
		return ScreenIdle, nil
	case ActionClose:
		return ScreenClosed, nil
	case ActionPause:
		switch current {
		case ScreenPlaying, ScreenPaused:
			return ScreenPaused, nil
		default:
			return current, invalidTransition(current, action)
		}
	case ActionResume, ActionNext:
		switch current {
		case ScreenPlaying, ScreenPaused:
			return ScreenPlaying, nil
		default:
			return current, invalidTransition(current, action)
		}
	default:
		return current, fmt.Errorf("unknown action %q", action)
	}
}

func invalidTransition(screen Screen, action Action) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", screen, action)
}
