package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/utils"
)

func (h *Handler) CreateForecast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string    `json:"name" validate:"required"`
		DayDate   time.Time `json:"dayDate" validate:"required"`
		IsWeekend bool      `json:"isWeekend"`
		Entries   []struct {
			Hour  int     `json:"hour" validate:"min=0,max=23"`
			Staff float64 `json:"staff"`
		} `json:"entries" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	forecast := &domain.Forecast{
		Name:      req.Name,
		DayDate:   req.DayDate,
		IsWeekend: req.IsWeekend,
		Entries:   make([]domain.ForecastEntry, len(req.Entries)),
	}
	for i, entry := range req.Entries {
		forecast.Entries[i] = domain.ForecastEntry{
			Hour:  entry.Hour,
			Staff: entry.Staff,
		}
	}

	// the requirement vector must be a complete 24-slot day
	if err := utils.ValidateForecastEntries(forecast.Entries); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateForecast(forecast); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "forecasts_name_key":
				h.errorResponse(w, r, "a forecast with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "forecast created", forecast)
}

func (h *Handler) GetAllForecasts(w http.ResponseWriter, r *http.Request) {
	forecasts, err := h.repository.GetAllForecasts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "forecasts fetched", forecasts)
}

func (h *Handler) GetForecastByID(w http.ResponseWriter, r *http.Request) {
	forecast := r.Context().Value(ForecastCtx).(*domain.Forecast)

	h.successResponse(w, r, "forecast fetched", forecast)
}

func (h *Handler) DeleteForecast(w http.ResponseWriter, r *http.Request) {
	forecast := r.Context().Value(ForecastCtx).(*domain.Forecast)

	if err := h.repository.DeleteForecast(forecast.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "forecast deleted", nil)
}
