package application

import (
	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
)

func reciterKeyboard(reciters []domain.Reciter, labels ButtonLabels) ports.Keyboard {
	rows := make(ports.Keyboard, 0, len(reciters)+1)
	for _, r := range reciters {
		rows = append(rows, []ports.Button{{Text: r.Name, Data: domain.ReciterCallback(r.ID).String()}})
	}
	rows = append(rows, []ports.Button{{Text: labels.Close, Data: string(domain.CallbackClose)}})
	return rows
}

func chapterKeyboard(chapters domain.Chapters, labels ButtonLabels) ports.Keyboard {
	rows := make(ports.Keyboard, 0, len(chapters)+1)
	for _, ch := range chapters {
		rows = append(rows, []ports.Button{{Text: ch.Label(), Data: domain.ChapterCallback(ch.ID).String()}})
	}
	rows = append(rows, []ports.Button{{Text: labels.Back, Data: string(domain.CallbackBackToStart)}})
	return rows
}

func controlsKeyboard(labels ButtonLabels) ports.Keyboard {
	return ports.Keyboard{
		{
			{Text: labels.Pause, Data: string(domain.CallbackPause)},
			{Text: labels.Resume, Data: string(domain.CallbackResume)},
		},
		{
			{Text: labels.Next, Data: string(domain.CallbackNext)},
			{Text: labels.Back, Data: string(domain.CallbackBackToChapters)},
		},
	}
}
