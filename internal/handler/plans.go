package handler

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/planner"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/utils"
)

// planOptionsRequest is the user-facing configuration surface of a planning
// run. Totals left null default to the caps inside the orchestrator.
type planOptionsRequest struct {
	CapFT                int    `json:"capFT" validate:"min=0"`
	CapPT                int    `json:"capPT" validate:"min=0"`
	TotalFT              *int   `json:"totalFT" validate:"omitempty,min=0"`
	TotalPT              *int   `json:"totalPT" validate:"omitempty,min=0"`
	Strategy             string `json:"strategy" validate:"omitempty,oneof=auto ft_first pt_first mixed"`
	MixedFTPercent       int    `json:"mixedFtPercent" validate:"min=0,max=100"`
	PTLengthHours        int    `json:"ptLengthHours" validate:"omitempty,oneof=4 6"`
	WeekendPTLengthHours *int   `json:"weekendPtLengthHours" validate:"omitempty,oneof=4 6"`
	LunchMinutes         *int   `json:"lunchMinutes" validate:"omitempty,min=0"`
}

// previewCacheKey derives the cache key of one preview request from its
// canonical JSON encoding. Identical requests hash to the same key; any
// differing option yields a different one.
func previewCacheKey(req any) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "preview:" + hex.EncodeToString(sum[:]), nil
}

func (h *Handler) plannerOptions(req *planOptionsRequest) *planner.Options {
	opts := &planner.Options{
		CapFT:                req.CapFT,
		CapPT:                req.CapPT,
		TotalFT:              req.TotalFT,
		TotalPT:              req.TotalPT,
		Strategy:             planner.Strategy(req.Strategy),
		MixedFTPercent:       req.MixedFTPercent,
		PTLengthHours:        req.PTLengthHours,
		WeekendPTLengthHours: req.WeekendPTLengthHours,
		LunchMinutes:         h.config.Planner.DefaultLunchMinutes,
	}
	if req.LunchMinutes != nil {
		opts.LunchMinutes = *req.LunchMinutes
	}
	return opts
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	forecast := r.Context().Value(ForecastCtx).(*domain.Forecast)

	var req struct {
		Name string `json:"name" validate:"required"`
		planOptionsRequest
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	artifacts := planner.Run(forecast.Entries, forecast.IsWeekend, h.plannerOptions(&req.planOptionsRequest))

	plan := &domain.SchedulePlan{
		ForecastID: forecast.ID,
		Name:       req.Name,
		Artifacts:  *artifacts,
	}

	if err := h.repository.CreateSchedulePlan(plan); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "plan created", plan)
}

func (h *Handler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Entries   []domain.ForecastEntry `json:"entries" validate:"required,dive"`
		IsWeekend bool                   `json:"isWeekend"`
		planOptionsRequest
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateForecastEntries(req.Entries); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// identical what-if requests are served from cache; the planner is
	// deterministic, so the canonical request JSON is a sufficient key
	cacheKey, err := previewCacheKey(req)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cached, err := h.redisClient.Get(r.Context(), cacheKey).Bytes()
	if err == nil {
		var artifacts domain.PlanArtifacts
		if err := json.Unmarshal(cached, &artifacts); err == nil {
			h.successResponse(w, r, "plan previewed", artifacts)
			return
		}
		// fall through and recompute on a corrupt cache entry
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("preview cache read failed", "error", err)
	}

	artifacts := planner.Run(req.Entries, req.IsWeekend, h.plannerOptions(&req.planOptionsRequest))

	buf, err := json.Marshal(artifacts)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	ttl := time.Duration(h.config.Redis.PreviewCacheTTL) * time.Second
	if err := h.redisClient.Set(r.Context(), cacheKey, buf, ttl).Err(); err != nil {
		slog.Warn("preview cache write failed", "error", err)
	}

	h.successResponse(w, r, "plan previewed", artifacts)
}

func (h *Handler) GetAllPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.repository.GetAllSchedulePlans()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "plans fetched", plans)
}

func (h *Handler) GetPlanByID(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	h.successResponse(w, r, "plan fetched", plan)
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	if err := h.repository.DeleteSchedulePlan(plan.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "plan deleted", nil)
}

func (h *Handler) EmailRoster(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(SchedulePlanCtx).(*domain.SchedulePlan)

	var req struct {
		To string `json:"to" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dayDate := ""
	forecast, err := h.repository.GetForecastByID(plan.ForecastID)
	switch {
	case err == nil:
		dayDate = forecast.DayDate.Format("2006-01-02")
	case errors.Is(err, sql.ErrNoRows):
		// forecast deleted since the plan was saved; send without a date
	default:
		h.internalServerError(w, r, err)
		return
	}

	mailData, err := json.Marshal(domain.MailMessage{
		Type: domain.MailTypeRoster,
		To:   req.To,
		Data: domain.RosterMailData{
			PlanName:  plan.Name,
			DayDate:   dayDate,
			Artifacts: plan.Artifacts,
		},
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"roster_email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "roster email queued", nil)
}
