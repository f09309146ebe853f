package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type CallbackKind string

const (
	CallbackReciter        CallbackKind = "rec"
	CallbackChapter        CallbackKind = "ch"
	CallbackBackToStart    CallbackKind = "back_to_start"
	CallbackPause          CallbackKind = "pause"
	CallbackResume         CallbackKind = "resume"
	CallbackNext           CallbackKind = "next"
	CallbackBackToChapters CallbackKind = "back_to_chapters"
	CallbackClose          CallbackKind = "close"
)

// Callback is a decoded button payload: a flat tag, optionally suffixed with
// "_<decimal>" for reciter and chapter selection.
type Callback struct {
	Kind CallbackKind
	ID   int
}

func ReciterCallback(id ReciterID) Callback {
	return Callback{Kind: CallbackReciter, ID: int(id)}
}

func ChapterCallback(id int) Callback {
	return Callback{Kind: CallbackChapter, ID: id}
}

func (c Callback) String() string {
	switch c.Kind {
	case CallbackReciter, CallbackChapter:
		return string(c.Kind) + "_" + strconv.Itoa(c.ID)
	default:
		return string(c.Kind)
	}
}

func ParseCallback(data string) (Callback, error) {
	switch kind := CallbackKind(data); kind {
	case CallbackBackToStart, CallbackPause, CallbackResume, CallbackNext, CallbackBackToChapters, CallbackClose:
		return Callback{Kind: kind}, nil
	}

	for _, kind := range []CallbackKind{CallbackReciter, CallbackChapter} {
		prefix := string(kind) + "_"
		if !strings.HasPrefix(data, prefix) {
			continue
		}

		raw := strings.TrimPrefix(data, prefix)
		if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
			return Callback{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return Callback{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
		}
		return Callback{Kind: kind, ID: id}, nil
	}

	return Callback{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
}
