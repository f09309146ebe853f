package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/recitebot/internal/application"
	"github.com/bnema/recitebot/internal/cache"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	sessions int
	caches   []application.CacheStatus
}

func (f fakeStats) ActiveSessions() int                    { return f.sessions }
func (f fakeStats) CacheStatus() []application.CacheStatus { return f.caches }

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealth(t *testing.T) {
	router := NewRouter(fakeStats{}, "1.2.3", time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"1.2.3"}`, rec.Body.String())
}

func TestStats(t *testing.T) {
	fetchedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	router := NewRouter(fakeStats{
		sessions: 3,
		caches: []application.CacheStatus{
			{Key: cache.KeyReciters, Items: 12, FetchedAt: fetchedAt},
			{Key: cache.KeyChapters, FetchedAt: fetchedAt, Failed: true},
		},
	}, "dev", time.Now().Add(-time.Minute))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Sessions)
	assert.Equal(t, "1m0s", body.Uptime)
	require.Len(t, body.Caches, 2)
	assert.Equal(t, "reciters", body.Caches[0].Key)
	assert.True(t, body.Caches[0].FetchedAt.Equal(fetchedAt))
	assert.True(t, body.Caches[1].Failed)
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(fakeStats{}, "dev", time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeStopsOnContextCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, NewRouter(fakeStats{}, "dev", time.Now()), nil)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeReportsListenError(t *testing.T) {
	err := Serve(context.Background(), "256.0.0.1:bad", NewRouter(fakeStats{}, "dev", time.Now()), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
