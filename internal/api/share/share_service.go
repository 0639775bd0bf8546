package share

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/tripforge/tripforge-api/internal/types"
)

// TTL bounds how long a share snapshot stays readable. The limit is a soft
// UX convention, not a security boundary.
const TTL = 24 * time.Hour

// Snapshot is one shared itinerary with its server-computed expiry.
type Snapshot struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service is the transient, non-durable share store. Snapshots vanish on
// restart and after TTL; a new request always re-generates the plan.
type Service interface {
	Create(itinerary *types.Itinerary) Snapshot
	Get(id string) (*types.Itinerary, bool)
}

type ServiceImpl struct {
	logger *slog.Logger
	store  *cache.Cache
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		store:  cache.New(TTL, time.Hour),
	}
}

// Create stores the itinerary under a fresh opaque identifier.
func (s *ServiceImpl) Create(itinerary *types.Itinerary) Snapshot {
	id := uuid.New().String()
	s.store.Set(id, itinerary, cache.DefaultExpiration)
	s.logger.Info("share snapshot created",
		slog.String("share_id", id),
		slog.String("title", itinerary.Title))
	return Snapshot{ID: id, ExpiresAt: time.Now().Add(TTL)}
}

// Get returns the snapshot for id, or false once it has expired or was never
// created.
func (s *ServiceImpl) Get(id string) (*types.Itinerary, bool) {
	v, found := s.store.Get(id)
	if !found {
		return nil, false
	}
	itinerary, ok := v.(*types.Itinerary)
	return itinerary, ok
}
