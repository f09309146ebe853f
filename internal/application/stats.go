package application

import "github.com/bnema/recitebot/internal/ports"

// RuntimeStats reports in-memory state of a running bot.
type RuntimeStats struct {
	sessions ports.SessionStore
	catalog  *CatalogService
}

func NewRuntimeStats(sessions ports.SessionStore, catalog *CatalogService) *RuntimeStats {
	return &RuntimeStats{sessions: sessions, catalog: catalog}
}

func (s *RuntimeStats) ActiveSessions() int {
	return s.sessions.Len()
}

func (s *RuntimeStats) CacheStatus() []CacheStatus {
	return s.catalog.CacheStatus()
}
