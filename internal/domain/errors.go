package domain

import "errors"

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrCatalogEmpty       = errors.New("catalog empty")
	ErrAudioUnavailable   = errors.New("audio recording unavailable")
	ErrReciterNotSelected = errors.New("reciter not selected")
	ErrNothingPlaying     = errors.New("nothing playing")
	ErrNoNextChapter      = errors.New("no next chapter")
	ErrMediaUnusable      = errors.New("media resource unusable")
	ErrUnknownCallback    = errors.New("unknown callback payload")
	ErrUnknownCommand     = errors.New("unknown command")
)
