package handler

import (
	"fmt"
	"net/http"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/export"
)

func (h *Handler) serveCSV(w http.ResponseWriter, r *http.Request, filename string, write func() error) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// headers are already on the wire, so a failure here can only be logged
	if err := write(); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) DownloadCoverageCSV(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	h.serveCSV(w, r, "coverage.csv", func() error {
		return export.WriteCoverageCSV(w, plan.Artifacts.Required, &plan.Artifacts.Result)
	})
}

func (h *Handler) DownloadShiftsCSV(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	h.serveCSV(w, r, "shifts.csv", func() error {
		return export.WriteShiftsCSV(w, &plan.Artifacts.Result)
	})
}

func (h *Handler) DownloadHiresCSV(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	h.serveCSV(w, r, "hires.csv", func() error {
		return export.WriteHiresCSV(w, plan.Artifacts.Hires)
	})
}

func (h *Handler) DownloadRosterCSV(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	h.serveCSV(w, r, "roster.csv", func() error {
		return export.WriteRosterCSV(w, plan.Artifacts.Roster)
	})
}
