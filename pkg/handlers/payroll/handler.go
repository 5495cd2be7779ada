package payroll

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/api"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/payroll"
	"github.com/rs/zerolog"
)

type Handler struct {
	exporter payroll.Exporter
}

func NewHandler(exporter payroll.Exporter) *Handler {
	return &Handler{exporter: exporter}
}

// ExportWeekly streams the weekly payroll workbook as an attachment. The
// weekStart query parameter is optional; a missing or malformed date
// falls back to the current week rather than failing the request.
func (h *Handler) ExportWeekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	weekStart := r.URL.Query().Get("weekStart")

	report, err := h.exporter.Export(ctx, weekStart)
	if err != nil {
		logger.Error().Err(err).Msg("weekly payroll export failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", payroll.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	if _, err := w.Write(report.Data); err != nil {
		logger.Error().Err(err).Msg("failed to write payroll workbook")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: msg})
}
