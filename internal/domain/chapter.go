package domain

import (
	"fmt"
	"sort"
)

const ChapterCount = 114

type Chapter struct {
	ID         int
	ArabicName string
}

func (c Chapter) Label() string {
	return fmt.Sprintf("%d. %s", c.ID, c.ArabicName)
}

// Chapters is ordered ascending by ID.
type Chapters []Chapter

func (cs Chapters) Sorted() Chapters {
	sorted := make(Chapters, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}

// NextAfter returns the chapter with the least ID strictly greater than id.
func (cs Chapters) NextAfter(id int) (Chapter, bool) {
	var (
		best  Chapter
		found bool
	)
	for _, c := range cs {
		if c.ID <= id {
			continue
		}
		if !found || c.ID < best.ID {
			best = c
			found = true
		}
	}

	return best, found
}

func (cs Chapters) Find(id int) (Chapter, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Chapter{}, false
}
