package application

import "strings"

// Messages holds every user-facing text. Templates use {name} placeholders.
type Messages struct {
	Welcome       string
	Help          string
	BackToStart   string
	ChooseReciter string
	ChooseChapter string

	RecitersUnavailable string
	ChaptersUnavailable string
	ReciterRequired     string
	AudioUnresolved     string
	NoNextChapter       string
	NothingPlaying      string
	NothingToPause      string
	AlreadyPlaying      string
	Paused              string
	PauseFailed         string
	Resumed             string
	NextPlaying         string
	PlayFailed          string
	UnknownAction       string

	// NowPlaying accepts {chapter} and {reciter}.
	NowPlaying string
	// TooLarge accepts {size} and {url}.
	TooLarge string
	// MediaUnusable accepts {url}.
	MediaUnusable string
	// MediaTitle accepts {chapter}; MediaPerformer accepts {reciter}.
	MediaTitle     string
	MediaPerformer string

	Buttons ButtonLabels
}

type ButtonLabels struct {
	Close  string
	Back   string
	Pause  string
	Resume string
	Next   string
}

// Fill substitutes {key} placeholders with the given key/value pairs.
func Fill(template string, pairs ...string) string {
	if len(pairs) == 0 {
		return template
	}

	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", pairs[i+1])
	}

	return strings.NewReplacer(oldnew...).Replace(template)
}
