// Package toml loads the bot's user-facing texts from a TOML document. An
// Arabic catalog is embedded; a file on disk may override any subset of keys.
package toml

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bnema/recitebot/internal/application"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	messagesFileMode = 0o644
	messagesDirMode  = 0o755
	tempFilePattern  = ".messages-*.toml.tmp"
)

//go:embed default.toml
var defaultCatalog []byte

// Default returns the embedded catalog.
func Default() (application.Messages, error) {
	file, err := decodeDefault()
	if err != nil {
		return application.Messages{}, err
	}

	return fromSchema(file), nil
}

// Load layers the file at path over the embedded catalog. An empty path or a
// missing file yields the embedded catalog unchanged.
func Load(path string) (application.Messages, error) {
	file, err := decodeDefault()
	if err != nil {
		return application.Messages{}, err
	}

	if path == "" {
		return fromSchema(file), nil
	}

	path, err = normalizeMessagesPath(path)
	if err != nil {
		return application.Messages{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fromSchema(file), nil
		}
		return application.Messages{}, fmt.Errorf("read messages file: %w", err)
	}

	file.Version = 0
	if err := toml.Unmarshal(data, &file); err != nil {
		return application.Messages{}, fmt.Errorf("decode messages file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return application.Messages{}, err
	}
	file.applyDefaults()

	if err := file.validate(); err != nil {
		return application.Messages{}, fmt.Errorf("messages file %s: %w", path, err)
	}

	return fromSchema(file), nil
}

// WriteDefault writes the embedded catalog to path so it can be edited. The
// file is replaced atomically.
func WriteDefault(path string) error {
	path, err := normalizeMessagesPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), messagesDirMode); err != nil {
		return fmt.Errorf("create messages directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp messages file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(defaultCatalog); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp messages file: %w", err)
	}

	if err := tempFile.Chmod(messagesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp messages file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp messages file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace messages file: %w", err)
	}

	cleanup = false
	return nil
}

func decodeDefault() (fileSchema, error) {
	var file fileSchema
	if err := toml.Unmarshal(defaultCatalog, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode embedded messages: %w", err)
	}
	file.applyDefaults()

	return file, nil
}

func (s fileSchema) validate() error {
	required := map[string]string{
		"texts.choose_reciter": s.Texts.ChooseReciter,
		"texts.choose_chapter": s.Texts.ChooseChapter,
		"texts.now_playing":    s.Texts.NowPlaying,
		"buttons.close":        s.Buttons.Close,
		"buttons.back":         s.Buttons.Back,
		"buttons.pause":        s.Buttons.Pause,
		"buttons.resume":       s.Buttons.Resume,
		"buttons.next":         s.Buttons.Next,
	}

	var missing []string
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("empty required keys: %s", strings.Join(missing, ", "))
	}

	if !strings.Contains(s.Texts.TooLarge, "{url}") || !strings.Contains(s.Texts.MediaUnusable, "{url}") {
		return errors.New("texts.too_large and texts.media_unusable must contain {url}")
	}

	return nil
}

func normalizeMessagesPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve messages path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func fromSchema(file fileSchema) application.Messages {
	t := file.Texts
	b := file.Buttons

	return application.Messages{
		Welcome:             t.Welcome,
		Help:                t.Help,
		BackToStart:         t.BackToStart,
		ChooseReciter:       t.ChooseReciter,
		ChooseChapter:       t.ChooseChapter,
		RecitersUnavailable: t.RecitersUnavailable,
		ChaptersUnavailable: t.ChaptersUnavailable,
		ReciterRequired:     t.ReciterRequired,
		AudioUnresolved:     t.AudioUnresolved,
		NoNextChapter:       t.NoNextChapter,
		NothingPlaying:      t.NothingPlaying,
		NothingToPause:      t.NothingToPause,
		AlreadyPlaying:      t.AlreadyPlaying,
		Paused:              t.Paused,
		PauseFailed:         t.PauseFailed,
		Resumed:             t.Resumed,
		NextPlaying:         t.NextPlaying,
		PlayFailed:          t.PlayFailed,
		UnknownAction:       t.UnknownAction,
		NowPlaying:          t.NowPlaying,
		TooLarge:            t.TooLarge,
		MediaUnusable:       t.MediaUnusable,
		MediaTitle:          t.MediaTitle,
		MediaPerformer:      t.MediaPerformer,
		Buttons: application.ButtonLabels{
			Close:  b.Close,
			Back:   b.Back,
			Pause:  b.Pause,
			Resume: b.Resume,
			Next:   b.Next,
		},
	}
}
