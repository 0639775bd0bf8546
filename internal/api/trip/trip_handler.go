package trip

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/tripforge/tripforge-api/app/observability/metrics"
	"github.com/tripforge/tripforge-api/internal/api"
	"github.com/tripforge/tripforge-api/internal/api/images"
	"github.com/tripforge/tripforge-api/internal/types"
)

type Handler struct {
	logger        *slog.Logger
	service       Service
	images        images.Service
	llmConfigured bool
}

func NewTripHandler(service Service, imageService images.Service, llmConfigured bool, logger *slog.Logger) *Handler {
	return &Handler{
		logger:        logger,
		service:       service,
		images:        imageService,
		llmConfigured: llmConfigured,
	}
}

// GenerateTrip handles POST /api/generate-trip.
// @Summary      Generate Trip Itinerary
// @Description  Generates an AI-planned itinerary for the given destination, dates and trip style.
// @Tags         Trip
// @Accept       json
// @Produce      json
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "GenerateTrip")
	defer span.End()

	l := h.logger.With(slog.String("method", "GenerateTrip"))
	start := time.Now()

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.TripErrorResponse(w, r, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		l.WarnContext(ctx, "Invalid trip parameters", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid trip parameters")
		api.TripErrorResponse(w, r, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	l.InfoContext(ctx, "Generating trip",
		slog.String("destination", req.Destination),
		slog.Int("days", req.Days),
		slog.String("type", req.Type))

	itinerary, err := h.service.GenerateTrip(ctx, req)
	h.recordRequest(ctx, start, err == nil)
	if err != nil {
		l.ErrorContext(ctx, "Trip generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Trip generation failed")
		api.TripErrorResponse(w, r, http.StatusInternalServerError, "trip generation failed", err.Error())
		return
	}

	span.SetStatus(codes.Ok, "Trip generated")
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}

// Health handles GET /api/health.
// @Summary      Health Check
// @Description  Reports service liveness and which upstream providers are configured.
// @Tags         Trip
// @Produce      json
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	pexels, unsplash := h.images.Configured()
	resp := map[string]any{
		"status":              "ok",
		"message":             "trip planner backend running",
		"llm_configured":      h.llmConfigured,
		"pexels_configured":   pexels,
		"unsplash_configured": unsplash,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode health response", slog.Any("error", err))
	}
}

func (h *Handler) recordRequest(ctx context.Context, start time.Time, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m := metrics.Get()
	m.TripRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.TripDurationSeconds.Record(ctx, time.Since(start).Seconds())
}
