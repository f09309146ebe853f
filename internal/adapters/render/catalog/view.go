package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// View selects what to render: at most one of the fields is set.
type View struct {
	Reciters []domain.Reciter
	Chapters domain.Chapters
	Audio    *AudioView
}

type AudioView struct {
	ReciterID   domain.ReciterID
	ReciterName string
	ChapterID   int
	Ref         domain.AudioRef
}

type RenderOptions struct {
	MaxDispatchBytes int64
}

var ErrAmbiguousView = errors.New("view must select at most one section")

// Render lays out catalog data for the terminal.
func Render(view View, opts RenderOptions) (string, error) {
	set := 0
	for _, present := range []bool{view.Reciters != nil, view.Chapters != nil, view.Audio != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return "", ErrAmbiguousView
	}

	return renderView(view, opts, newStyles()), nil
}

func renderView(view View, opts RenderOptions, s styles) string {
	switch {
	case view.Audio != nil:
		return renderAudio(*view.Audio, opts, s)
	case view.Chapters != nil:
		return renderChapters(view.Chapters, s)
	default:
		return renderReciters(view.Reciters, s)
	}
}

func renderReciters(reciters []domain.Reciter, s styles) string {
	lines := []string{
		s.title.Render("Reciters"),
		s.header.Render(fmt.Sprintf("reciters: %d", len(reciters))),
	}

	if len(reciters) == 0 {
		lines = append(lines, s.empty.Render("No reciters available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(reciters))
	for _, r := range reciters {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, s.id.Render(r.ID.String()), "  ", s.name.Render(r.Name)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderChapters(chapters domain.Chapters, s styles) string {
	lines := []string{
		s.title.Render("Chapters"),
		s.header.Render(fmt.Sprintf("chapters: %d", len(chapters))),
	}

	if len(chapters) == 0 {
		lines = append(lines, s.empty.Render("No chapters available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(chapters))
	for _, ch := range chapters.Sorted() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, s.id.Render(strconv.Itoa(ch.ID)), "  ", s.detail.Render(ch.ArabicName)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAudio(audio AudioView, opts RenderOptions, s styles) string {
	reciter := strings.TrimSpace(audio.ReciterName)
	if reciter == "" {
		reciter = audio.ReciterID.String()
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Chapter %d by %s", audio.ChapterID, reciter)),
		s.detail.Render("url: " + audio.Ref.URL),
		sizeLine(audio.Ref, opts.MaxDispatchBytes, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sizeLine(ref domain.AudioRef, limit int64, s styles) string {
	if !ref.SizeKnown() {
		return s.detail.Render("size: unknown")
	}

	line := s.detail.Render("size: " + ref.HumanSize())
	if limit <= 0 {
		return line
	}

	percent := float64(ref.SizeBytes) / float64(limit) * 100
	line = lipgloss.JoinHorizontal(
		lipgloss.Top,
		line,
		" ",
		renderProgressBar(percent, 24, s),
		" ",
		s.header.Render(fmt.Sprintf("of %s", humanize.IBytes(uint64(limit)))),
	)

	if ref.Exceeds(limit) {
		line += " " + s.warning.Render("[link only]")
	}

	return line
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
