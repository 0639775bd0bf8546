package document

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/tripforge/tripforge-api/app/observability/metrics"
	"github.com/tripforge/tripforge-api/internal/api"
	"github.com/tripforge/tripforge-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewDocumentHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// GeneratePDF handles POST /api/generate-pdf.
// @Summary      Generate Itinerary PDF
// @Description  Renders the posted itinerary into a downloadable PDF document.
// @Tags         Document
// @Accept       json
// @Produce      application/pdf
func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DocumentHandler").Start(r.Context(), "GeneratePDF")
	defer span.End()

	l := h.logger.With(slog.String("method", "GeneratePDF"))

	var itinerary types.Itinerary
	if err := api.DecodeJSONBody(w, r, &itinerary); err != nil {
		l.WarnContext(ctx, "Invalid itinerary body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid itinerary body")
		api.TripErrorResponse(w, r, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	l.InfoContext(ctx, "Rendering itinerary PDF",
		slog.String("title", itinerary.Title),
		slog.Int("destinations", len(itinerary.Destinations)),
		slog.Int("hotels", len(itinerary.Hotels)))

	pdfBytes, err := h.service.RenderItinerary(&itinerary)
	if err != nil {
		metrics.Get().PdfRenderErrorsTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "PDF rendering failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "PDF rendering failed")
		api.TripErrorResponse(w, r, http.StatusInternalServerError, "pdf generation failed", err.Error())
		return
	}
	metrics.Get().PdfRendersTotal.Add(ctx, 1)

	title := itinerary.Title
	if title == "" {
		title = "travel-plan"
	}
	filename := fmt.Sprintf("%s_%d.pdf", title, time.Now().UnixMilli())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		l.ErrorContext(ctx, "Failed to write PDF body", slog.Any("error", err))
		return
	}

	span.SetStatus(codes.Ok, "PDF generated")
	l.InfoContext(ctx, "PDF generated", slog.String("filename", filename), slog.Int("bytes", len(pdfBytes)))
}
