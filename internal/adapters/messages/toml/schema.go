package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Texts   textsSchema   `toml:"texts"`
	Buttons buttonsSchema `toml:"buttons"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported messages schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type textsSchema struct {
	Welcome             string `toml:"welcome"`
	Help                string `toml:"help"`
	BackToStart         string `toml:"back_to_start"`
	ChooseReciter       string `toml:"choose_reciter"`
	ChooseChapter       string `toml:"choose_chapter"`
	RecitersUnavailable string `toml:"reciters_unavailable"`
	ChaptersUnavailable string `toml:"chapters_unavailable"`
	ReciterRequired     string `toml:"reciter_required"`
	AudioUnresolved     string `toml:"audio_unresolved"`
	NoNextChapter       string `toml:"no_next_chapter"`
	NothingPlaying      string `toml:"nothing_playing"`
	NothingToPause      string `toml:"nothing_to_pause"`
	AlreadyPlaying      string `toml:"already_playing"`
	Paused              string `toml:"paused"`
	PauseFailed         string `toml:"pause_failed"`
	Resumed             string `toml:"resumed"`
	NextPlaying         string `toml:"next_playing"`
	PlayFailed          string `toml:"play_failed"`
	UnknownAction       string `toml:"unknown_action"`
	NowPlaying          string `toml:"now_playing"`
	TooLarge            string `toml:"too_large"`
	MediaUnusable       string `toml:"media_unusable"`
	MediaTitle          string `toml:"media_title"`
	MediaPerformer      string `toml:"media_performer"`
}

type buttonsSchema struct {
	Close  string `toml:"close"`
	Back   string `toml:"back"`
	Pause  string `toml:"pause"`
	Resume string `toml:"resume"`
	Next   string `toml:"next"`
}
