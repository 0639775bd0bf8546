package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripforge/tripforge-api/app/observability/metrics"
	generativeAI "github.com/tripforge/tripforge-api/internal/api/generative_ai"
	"github.com/tripforge/tripforge-api/internal/api/images"
	"github.com/tripforge/tripforge-api/internal/types"
)

// Service drives the full generation pipeline: prompt, model call,
// normalization, image enrichment.
type Service interface {
	GenerateTrip(ctx context.Context, req types.TripRequest) (*types.Itinerary, error)
}

type ServiceImpl struct {
	logger   *slog.Logger
	aiClient generativeAI.AIClient
	images   images.Service
}

func NewServiceImpl(aiClient generativeAI.AIClient, imageService images.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
		images:   imageService,
	}
}

// GenerateTrip builds one Itinerary per request. A model failure is fatal
// here; a normalization failure is not, the fallback plan takes its place.
func (s *ServiceImpl) GenerateTrip(ctx context.Context, req types.TripRequest) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "GenerateTrip")
	defer span.End()
	span.SetAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.days", req.Days),
		attribute.String("trip.type", req.Type),
	)

	l := s.logger.With(slog.String("destination", req.Destination), slog.Int("days", req.Days))

	system, user := buildTripPrompt(req)
	span.SetAttributes(attribute.Int("prompt.length", len(user)))

	start := time.Now()
	raw, err := s.aiClient.GenerateCompletion(ctx, system, user)
	metrics.Get().LlmLatencySeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Upstream generation failed")
		return nil, fmt.Errorf("upstream generation failed: %w", err)
	}
	span.SetAttributes(attribute.Int("response.length", len(raw)))

	itinerary, err := ParseItinerary(raw)
	if err != nil {
		var nerr *NormalizationError
		kind := MalformedOutput
		if errors.As(err, &nerr) {
			kind = nerr.Kind
		}
		l.WarnContext(ctx, "model output could not be normalized, using fallback itinerary",
			slog.String("kind", string(kind)), slog.Any("error", err))
		span.AddEvent("fallback itinerary substituted")
		itinerary = defaultItinerary()
	}

	// The model sometimes returns fewer days than asked. Accepted as-is; no
	// repair is attempted.
	if got := itinerary.TotalDays(); got < req.Days {
		l.WarnContext(ctx, "model returned fewer days than requested",
			slog.Int("requested", req.Days), slog.Int("returned", got))
	}
	itinerary.CheckConsistency(s.logger)

	s.enrich(ctx, itinerary)

	l.InfoContext(ctx, "itinerary generated",
		slog.String("title", itinerary.Title),
		slog.Int("destinations", len(itinerary.Destinations)),
		slog.Int("hotels", len(itinerary.Hotels)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return itinerary, nil
}

// enrich resolves one image per destination and per hotel, sequentially in
// array order. Resolution never fails, so neither can this.
func (s *ServiceImpl) enrich(ctx context.Context, itinerary *types.Itinerary) {
	for i := range itinerary.Destinations {
		dest := &itinerary.Destinations[i]
		keyword := dest.City
		if dest.Landmark != "" {
			if english, ok := images.LandmarkQuery(dest.Landmark); ok {
				keyword = english
			} else {
				keyword = dest.City + " " + dest.Landmark
			}
		}
		dest.Image = s.images.Resolve(ctx, keyword, images.KindCity)
	}

	for i := range itinerary.Hotels {
		hotel := &itinerary.Hotels[i]
		query := images.HotelQuery(hotel.Name, hotel.City)
		hotel.Image = s.images.Resolve(ctx, query, images.KindHotel)
	}
}
