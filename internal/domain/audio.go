package domain

import "github.com/dustin/go-humanize"

// DefaultMaxDispatchBytes is the largest recording sent as a media item.
const DefaultMaxDispatchBytes int64 = 50 * 1024 * 1024

// AudioRef locates one recording. SizeBytes 0 means the size is unknown.
type AudioRef struct {
	URL       string
	SizeBytes int64
}

func (a AudioRef) SizeKnown() bool {
	return a.SizeBytes > 0
}

func (a AudioRef) Exceeds(limit int64) bool {
	return a.SizeKnown() && a.SizeBytes > limit
}

func (a AudioRef) HumanSize() string {
	if !a.SizeKnown() {
		return "?"
	}
	return humanize.IBytes(uint64(a.SizeBytes))
}

// Media describes an item handed to the transport for dispatch.
type Media struct {
	URL       string
	Title     string
	Performer string
}

