package share

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripforge/tripforge-api/internal/api"
	"github.com/tripforge/tripforge-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewShareHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// CreateShare handles POST /api/share.
// @Summary      Create Share Snapshot
// @Description  Stores one itinerary for 24 hours under an opaque identifier.
// @Tags         Share
// @Accept       json
// @Produce      json
func (h *Handler) CreateShare(w http.ResponseWriter, r *http.Request) {
	var itinerary types.Itinerary
	if err := api.DecodeJSONBody(w, r, &itinerary); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid share body", slog.Any("error", err))
		api.TripErrorResponse(w, r, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	snapshot := h.service.Create(&itinerary)
	api.WriteJSONResponse(w, r, http.StatusCreated, snapshot)
}

// GetShare handles GET /api/share/{shareID}.
// @Summary      Read Share Snapshot
// @Description  Returns a previously shared itinerary until its expiry.
// @Tags         Share
// @Produce      json
func (h *Handler) GetShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shareID")
	itinerary, found := h.service.Get(id)
	if !found {
		api.TripErrorResponse(w, r, http.StatusNotFound, "share not found", "the share link is invalid or has expired")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}
