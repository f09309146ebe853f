// Package httpapi exposes liveness and runtime statistics over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bnema/recitebot/internal/application"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// StatsSource reports what the running bot holds in memory.
type StatsSource interface {
	ActiveSessions() int
	CacheStatus() []application.CacheStatus
}

type cacheStatusResponse struct {
	Key       string    `json:"key"`
	Items     int       `json:"items"`
	FetchedAt time.Time `json:"fetched_at"`
	Failed    bool      `json:"failed"`
}

type statsResponse struct {
	Sessions int                   `json:"sessions"`
	Uptime   string                `json:"uptime"`
	Caches   []cacheStatusResponse `json:"caches"`
}

func NewRouter(stats StatsSource, version string, startedAt time.Time) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version})
	})

	router.GET("/stats", func(c *gin.Context) {
		caches := make([]cacheStatusResponse, 0, 2)
		for _, status := range stats.CacheStatus() {
			caches = append(caches, cacheStatusResponse{
				Key:       string(status.Key),
				Items:     status.Items,
				FetchedAt: status.FetchedAt,
				Failed:    status.Failed,
			})
		}

		c.JSON(http.StatusOK, statsResponse{
			Sessions: stats.ActiveSessions(),
			Uptime:   time.Since(startedAt).Round(time.Second).String(),
			Caches:   caches,
		})
	})

	return router
}

// Serve runs handler on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	logger.Info("health endpoint listening", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}

	return nil
}
