package images

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(cfg Config) *ServiceImpl {
	cfg.RetryDelay = time.Millisecond
	cfg.RequestTimeout = time.Second
	return NewServiceImpl(cfg, nil, testLogger())
}

func TestResolveNeverFails(t *testing.T) {
	svc := newTestService(Config{}) // no providers configured

	tests := []struct {
		name    string
		keyword string
		kind    Kind
	}{
		{"empty keyword city", "", KindCity},
		{"empty keyword hotel", "", KindHotel},
		{"latin city", "Lisbon", KindCity},
		{"cjk city", "北京", KindCity},
		{"cjk hotel", "天津瑞吉金融街酒店", KindHotel},
		{"mixed script", "Shanghai 外滩", KindCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := svc.Resolve(context.Background(), tt.keyword, tt.kind)
			assert.NotEmpty(t, url)
			assert.True(t, strings.HasPrefix(url, "https://"), "expected a URL, got %q", url)
		})
	}
}

func TestResolveCuratedCityDeterministic(t *testing.T) {
	svc := newTestService(Config{})

	// Exact curated key with no providers configured must return exactly
	// the mapped URL, every time.
	want := cityImageMap["北京"]
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, svc.Resolve(context.Background(), "北京", KindCity))
	}
}

func TestResolveCuratedCityFuzzy(t *testing.T) {
	svc := newTestService(Config{})

	// Keyword containing a known city name matches the curated map.
	got := svc.Resolve(context.Background(), "美丽的北京", KindCity)
	assert.Equal(t, cityImageMap["北京"], got)

	// Unknown city falls through to the generic image.
	got = svc.Resolve(context.Background(), "Atlantis", KindCity)
	assert.Equal(t, GenericCityImage, got)
}

func TestResolveHotelPool(t *testing.T) {
	svc := newTestService(Config{})

	pool := make(map[string]bool, len(hotelImagePool))
	for _, u := range hotelImagePool {
		pool[u] = true
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		url := svc.Resolve(context.Background(), "Some Hotel", KindHotel)
		require.True(t, pool[url], "hotel resolution must come from the stock pool, got %q", url)
		seen[url] = true
	}
	// Pseudo-random, not cryptographic: 100 draws over a pool of 5 must not
	// all land on one entry.
	assert.Greater(t, len(seen), 1, "expected more than one distinct pool entry over 100 draws")
}

func TestHotelQuery(t *testing.T) {
	tests := []struct {
		name  string
		hotel string
		city  string
		want  string
	}{
		{"latin brand", "Hilton Garden Inn Riverside", "Beijing", "Hilton hotel"},
		{"cjk brand", "天津瑞吉金融街酒店", "天津", "瑞吉 hotel"},
		{"no brand", "Seaside Boutique Stay", "Sanya", "Sanya luxury hotel"},
		{"empty name", "", "Lisbon", "Lisbon luxury hotel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HotelQuery(tt.hotel, tt.city))
		})
	}
}

func TestLandmarkQuery(t *testing.T) {
	q, ok := LandmarkQuery("故宫")
	require.True(t, ok)
	assert.Equal(t, "forbidden city beijing", q)

	_, ok = LandmarkQuery("未知地标")
	assert.False(t, ok)
}

func TestContainsCJK(t *testing.T) {
	assert.True(t, containsCJK("北京"))
	assert.True(t, containsCJK("visit 上海 now"))
	assert.False(t, containsCJK("Lisbon"))
	assert.False(t, containsCJK(""))
}

func TestPexelsSearchSuccess(t *testing.T) {
	var gotLocale atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale.Store(r.URL.Query().Get("locale"))
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_results":1,"photos":[{"src":{"original":"https://img/original.jpg","large":"https://img/large.jpg"}}]}`))
	}))
	defer ts.Close()

	svc := newTestService(Config{PexelsAPIKey: "test-key"})
	svc.pexels.baseURL = ts.URL

	url := svc.Resolve(context.Background(), "北京", KindCity)
	assert.Equal(t, "https://img/large.jpg", url)
	assert.Equal(t, "zh-CN", gotLocale.Load())
}

func TestPexelsAuthErrorSkipsRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	svc := newTestService(Config{PexelsAPIKey: "bad-key"})
	svc.pexels.baseURL = ts.URL

	url := svc.Resolve(context.Background(), "北京", KindCity)
	// Auth failure advances the chain; the curated map still answers.
	assert.Equal(t, cityImageMap["北京"], url)
	// Verbatim query plus the mapped English fallback query, one attempt
	// each: bad credentials are never retried.
	assert.Equal(t, int32(2), calls.Load())
}

func TestPexelsTransientErrorRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_results":1,"photos":[{"src":{"original":"https://img/o.jpg","large":"https://img/l.jpg"}}]}`))
	}))
	defer ts.Close()

	svc := newTestService(Config{PexelsAPIKey: "test-key"})
	svc.pexels.baseURL = ts.URL

	url := svc.Resolve(context.Background(), "Lisbon", KindCity)
	assert.Equal(t, "https://img/l.jpg", url)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPexelsHotelFallbackQueries(t *testing.T) {
	var queries []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		queries = append(queries, q)
		w.Header().Set("Content-Type", "application/json")
		if q == "five star hotel" {
			w.Write([]byte(`{"total_results":1,"photos":[{"src":{"original":"","large":"https://img/hotel.jpg"}}]}`))
			return
		}
		w.Write([]byte(`{"total_results":0,"photos":[]}`))
	}))
	defer ts.Close()

	svc := newTestService(Config{PexelsAPIKey: "test-key"})
	svc.pexels.baseURL = ts.URL

	url := svc.Resolve(context.Background(), "Obscure Hotel Name", KindHotel)
	assert.Equal(t, "https://img/hotel.jpg", url)
	assert.Equal(t, []string{"Obscure Hotel Name", "luxury hotel lobby", "hotel room interior", "five star hotel"}, queries)
}

func TestUnsplashPreferredOverPexels(t *testing.T) {
	unsplashTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID unsplash-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"urls":{"full":"https://u/full.jpg","regular":"https://u/regular.jpg"}}]}`))
	}))
	defer unsplashTS.Close()

	pexelsCalled := false
	pexelsTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pexelsCalled = true
	}))
	defer pexelsTS.Close()

	svc := newTestService(Config{PexelsAPIKey: "pexels-key", UnsplashAccessKey: "unsplash-key"})
	svc.unsplash.baseURL = unsplashTS.URL
	svc.pexels.baseURL = pexelsTS.URL

	url := svc.Resolve(context.Background(), "Lisbon", KindCity)
	assert.Equal(t, "https://u/regular.jpg", url)
	assert.False(t, pexelsCalled, "pexels must not be queried when unsplash answered")
}

func TestConfigured(t *testing.T) {
	svc := newTestService(Config{PexelsAPIKey: "k"})
	pexels, unsplash := svc.Configured()
	assert.True(t, pexels)
	assert.False(t, unsplash)

	svc = newTestService(Config{PexelsAPIKey: "YOUR_PEXELS_API_KEY_HERE"})
	pexels, _ = svc.Configured()
	assert.False(t, pexels, "placeholder key must count as unconfigured")
}
