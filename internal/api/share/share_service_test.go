package share

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/tripforge-api/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestShareRoundTrip(t *testing.T) {
	svc := NewServiceImpl(testLogger())

	itinerary := &types.Itinerary{Title: "Kyoto in Autumn"}
	snapshot := svc.Create(itinerary)

	require.NotEmpty(t, snapshot.ID)
	assert.WithinDuration(t, time.Now().Add(TTL), snapshot.ExpiresAt, time.Minute)

	got, found := svc.Get(snapshot.ID)
	require.True(t, found)
	assert.Equal(t, "Kyoto in Autumn", got.Title)
}

func TestShareUnknownID(t *testing.T) {
	svc := NewServiceImpl(testLogger())

	_, found := svc.Get("no-such-id")
	assert.False(t, found)
}

func TestShareIDsAreUnique(t *testing.T) {
	svc := NewServiceImpl(testLogger())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		snapshot := svc.Create(&types.Itinerary{Title: "T"})
		require.False(t, seen[snapshot.ID])
		seen[snapshot.ID] = true
	}
}
