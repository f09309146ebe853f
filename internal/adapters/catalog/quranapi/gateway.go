package quranapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL        = "https://api.quran.com/api/v4"
	DefaultRequestTimeout = 10 * time.Second
	DefaultRatePerSecond  = 5

	maxResponseBytes = 1 << 20
)

type Gateway struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Limiter        *rate.Limiter
	Logger         *log.Logger
}

var _ ports.CatalogGateway = (*Gateway)(nil)

type recitationsResponse struct {
	Recitations []struct {
		ID          int    `json:"id"`
		ReciterName string `json:"reciter_name"`
	} `json:"recitations"`
}

type chaptersResponse struct {
	Chapters []struct {
		ID         int    `json:"id"`
		NameArabic string `json:"name_arabic"`
	} `json:"chapters"`
}

type chapterRecitationResponse struct {
	AudioFile struct {
		AudioURL string `json:"audio_url"`
		FileSize *int64 `json:"file_size"`
	} `json:"audio_file"`
}

func NewGateway(baseURL string, timeout time.Duration, ratePerSecond float64, logger *log.Logger) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if ratePerSecond <= 0 {
		ratePerSecond = DefaultRatePerSecond
	}
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Gateway{
		BaseURL:        baseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: timeout,
		Limiter:        rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		Logger:         logger,
	}
}

func (g *Gateway) ListReciters(ctx context.Context) ([]domain.Reciter, error) {
	var payload recitationsResponse
	if err := g.getJSON(ctx, "resources/recitations", nil, &payload); err != nil {
		return nil, g.unavailable("list reciters", err)
	}

	reciters := make([]domain.Reciter, 0, len(payload.Recitations))
	for _, r := range payload.Recitations {
		reciters = append(reciters, domain.Reciter{ID: domain.ReciterID(r.ID), Name: r.ReciterName})
	}

	return reciters, nil
}

func (g *Gateway) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	var payload chaptersResponse
	query := url.Values{}
	query.Set("language", "ar")
	if err := g.getJSON(ctx, "chapters", query, &payload); err != nil {
		return nil, g.unavailable("list chapters", err)
	}

	chapters := make(domain.Chapters, 0, len(payload.Chapters))
	for _, c := range payload.Chapters {
		chapters = append(chapters, domain.Chapter{ID: c.ID, ArabicName: c.NameArabic})
	}

	return chapters.Sorted(), nil
}

func (g *Gateway) ResolveAudio(ctx context.Context, reciterID domain.ReciterID, chapterID int) (domain.AudioRef, error) {
	var payload chapterRecitationResponse
	path := "chapter_recitations/" + reciterID.String() + "/" + strconv.Itoa(chapterID)
	if err := g.getJSON(ctx, path, nil, &payload); err != nil {
		return domain.AudioRef{}, g.unavailable("resolve audio", err, "reciter", reciterID, "chapter", chapterID)
	}

	if payload.AudioFile.AudioURL == "" {
		g.logger().Error("resolve audio", "reciter", reciterID, "chapter", chapterID, "err", domain.ErrAudioUnavailable)
		return domain.AudioRef{}, fmt.Errorf("resolve audio: %w: %w: reciter %s chapter %d", domain.ErrCatalogUnavailable, domain.ErrAudioUnavailable, reciterID, chapterID)
	}

	ref := domain.AudioRef{URL: payload.AudioFile.AudioURL}
	if payload.AudioFile.FileSize != nil && *payload.AudioFile.FileSize > 0 {
		ref.SizeBytes = *payload.AudioFile.FileSize
	}

	return ref, nil
}

func (g *Gateway) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint, err := buildAPIURL(g.BaseURL, path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	requestCtx, cancel := g.requestContext(ctx)
	defer cancel()

	if g.Limiter != nil {
		if err := g.Limiter.Wait(requestCtx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (g *Gateway) unavailable(op string, err error, keyvals ...any) error {
	g.logger().Error(op, append(keyvals, "err", err)...)
	return fmt.Errorf("%s: %w: %w", op, domain.ErrCatalogUnavailable, err)
}

func (g *Gateway) httpClient() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func (g *Gateway) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}

func (g *Gateway) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := g.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return parsed.JoinPath(path).String(), nil
}
