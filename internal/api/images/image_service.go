package images

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/tripforge/tripforge-api/app/observability/metrics"
)

// Kind selects the resolution strategy tail: cities fall back to the curated
// map, hotels to the stock pool.
type Kind string

const (
	KindCity  Kind = "city"
	KindHotel Kind = "hotel"
)

// Config carries the provider credentials and the retry budget. Missing keys
// degrade the corresponding chain stage to a no-op.
type Config struct {
	PexelsAPIKey      string
	UnsplashAccessKey string
	RetryAttempts     int
	RetryDelay        time.Duration
	RequestTimeout    time.Duration
}

// Service resolves a textual place or hotel descriptor to an image URL. It
// never fails: some valid URL always comes back, a broken image being worse
// than a generic one.
type Service interface {
	Resolve(ctx context.Context, keyword string, kind Kind) string
	Configured() (pexels, unsplash bool)
	Warm(ctx context.Context)
}

// resolver is one stage of the fallback chain. Returning "" advances the
// chain to the next stage.
type resolver struct {
	name string
	fn   func(ctx context.Context, keyword string, kind Kind) string
}

// ServiceImpl runs the ordered fallback chain over a shared keep-alive HTTP
// transport so TLS and DNS setup is amortized across a session.
type ServiceImpl struct {
	logger   *slog.Logger
	unsplash *unsplashClient
	pexels   *pexelsClient
	retry    retryPolicy
	chain    []resolver
	randIntN func(n int) int
}

// NewServiceImpl builds the engine with its own pooled transport. Pass a nil
// client to use the default pool settings.
func NewServiceImpl(cfg Config, client *http.Client, logger *slog.Logger) *ServiceImpl {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 2
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 12 * time.Second
	}

	s := &ServiceImpl{
		logger:   logger,
		unsplash: &unsplashClient{accessKey: cfg.UnsplashAccessKey, baseURL: unsplashSearchURL, http: client},
		pexels:   &pexelsClient{apiKey: cfg.PexelsAPIKey, baseURL: pexelsSearchURL, http: client},
		retry: retryPolicy{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			Timeout:  cfg.RequestTimeout,
		},
		randIntN: rand.IntN,
	}
	// Chain order is the whole policy; reordering stages is a code-review
	// decision, not scattered conditionals.
	s.chain = []resolver{
		{name: "unsplash", fn: s.resolveUnsplash},
		{name: "pexels", fn: s.resolvePexels},
		{name: "curated_city", fn: s.resolveCuratedCity},
		{name: "hotel_pool", fn: s.resolveHotelPool},
		{name: "generic", fn: s.resolveGeneric},
	}
	return s
}

// Resolve walks the chain and returns the first hit. The final stage always
// answers, so the return value is never empty.
func (s *ServiceImpl) Resolve(ctx context.Context, keyword string, kind Kind) string {
	ctx, span := otel.Tracer("ImageService").Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(
		attribute.String("image.keyword", keyword),
		attribute.String("image.kind", string(kind)),
	)

	for _, stage := range s.chain {
		if url := stage.fn(ctx, keyword, kind); url != "" {
			s.logger.InfoContext(ctx, "image resolved",
				slog.String("keyword", keyword),
				slog.String("kind", string(kind)),
				slog.String("stage", stage.name))
			metrics.Get().ImageLookupsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("stage", stage.name)))
			span.SetAttributes(attribute.String("image.stage", stage.name))
			span.SetStatus(codes.Ok, "resolved")
			return url
		}
	}

	// Unreachable: the generic stage always returns. Kept so the chain
	// stays a plain list.
	span.SetStatus(codes.Error, "chain exhausted")
	return GenericCityImage
}

// Configured reports which providers have credentials, for the health check.
func (s *ServiceImpl) Configured() (pexels, unsplash bool) {
	return s.pexels.configured(), s.unsplash.configured()
}

// Warm pre-establishes the provider connection so the first user request does
// not pay the TLS and DNS setup cost.
func (s *ServiceImpl) Warm(ctx context.Context) {
	if !s.pexels.configured() {
		return
	}
	if _, err := s.pexels.search(ctx, "test"); err != nil {
		s.logger.Warn("provider warmup failed", slog.Any("error", err))
		return
	}
	s.logger.Info("provider connection warmed")
}

func (s *ServiceImpl) resolveUnsplash(ctx context.Context, keyword string, _ Kind) string {
	if !s.unsplash.configured() {
		return ""
	}
	url, err := s.retry.do(ctx, s.logger, "unsplash.search", func(ctx context.Context) (string, error) {
		return s.unsplash.search(ctx, keyword)
	})
	if err != nil {
		return ""
	}
	return url
}

func (s *ServiceImpl) resolvePexels(ctx context.Context, keyword string, kind Kind) string {
	if !s.pexels.configured() {
		return ""
	}

	if url := s.pexelsSearch(ctx, keyword); url != "" {
		return url
	}

	// Verbatim query came back empty; degrade to English.
	if kind == KindHotel {
		for _, q := range hotelFallbackQueries {
			if url := s.pexelsSearch(ctx, q); url != "" {
				return url
			}
		}
		return ""
	}

	english, ok := cityQueryMap[keyword]
	if !ok {
		english = strings.ToLower(keyword) + " city landmark"
	}
	return s.pexelsSearch(ctx, english)
}

func (s *ServiceImpl) pexelsSearch(ctx context.Context, query string) string {
	url, err := s.retry.do(ctx, s.logger, "pexels.search", func(ctx context.Context) (string, error) {
		return s.pexels.search(ctx, query)
	})
	if err != nil {
		return ""
	}
	return url
}

func (s *ServiceImpl) resolveCuratedCity(_ context.Context, keyword string, kind Kind) string {
	if kind != KindCity {
		return ""
	}
	if url, ok := lookupCityImage(keyword); ok {
		return url
	}
	return ""
}

func (s *ServiceImpl) resolveHotelPool(_ context.Context, _ string, kind Kind) string {
	if kind != KindHotel {
		return ""
	}
	return hotelImagePool[s.randIntN(len(hotelImagePool))]
}

func (s *ServiceImpl) resolveGeneric(_ context.Context, _ string, _ Kind) string {
	return GenericCityImage
}

// containsCJK reports whether the query carries Han ideographs, which decides
// the locale hint sent to the providers.
func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
