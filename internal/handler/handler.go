package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/config"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/me", h.Me)

		r.Route("/forecasts", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateForecast)
			r.Get("/", h.GetAllForecasts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.forecast)
				r.Get("/", h.GetForecastByID)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteForecast)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/plans", h.CreatePlan)
			})
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.GetAllPlans)
			r.Post("/preview", h.PreviewPlan)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.schedulePlan)
				r.Get("/", h.GetPlanByID)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePlan)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/email", h.EmailRoster)
				r.Get("/coverage.csv", h.DownloadCoverageCSV)
				r.Get("/shifts.csv", h.DownloadShiftsCSV)
				r.Get("/hires.csv", h.DownloadHiresCSV)
				r.Get("/roster.csv", h.DownloadRosterCSV)
			})
		})
	})
}
