package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/slab-org/slab-gangnam4/internal/config"
	"github.com/slab-org/slab-gangnam4/internal/repository"
)

type Handler struct {
	validate          *validator.Validate
	config            *config.Config
	repository        *repository.Repository
	translator        ut.Translator
	mailChannel       *amqp.Channel
	redisClient       *redis.Client
	adminPasswordHash []byte

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

	// 관리자 비밀번호는 설정으로 받아서 기동 시에 해시해 둔다
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:          validate,
		config:            cfg,
		repository:        repo,
		translator:        trans,
		mailChannel:       mailCh,
		redisClient:       rdb,
		adminPasswordHash: passwordHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 관리자 인증
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 직원용 화면은 인증 없이 쓴다. 관리자용 쓰기만 토큰이 필요하다.
	h.Mux.Route("/staff", func(r chi.Router) {
		r.Get("/", h.GetAllStaff)
		r.With(h.adminAuth).Post("/", h.CreateStaff)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.adminAuth)
			r.Use(h.staffInfo)
			r.Patch("/", h.UpdateStaff)
			r.Delete("/", h.DeleteStaff)
		})
	})

	h.Mux.Route("/schedule", func(r chi.Router) {
		r.Get("/", h.GetMonthSchedule)
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.GetScheduleTemplates)
			r.With(h.adminAuth).Put("/", h.SaveScheduleTemplates)
		})
		r.Route("/overrides/{date}", func(r chi.Router) {
			r.Put("/", h.SaveScheduleOverride)
			r.Delete("/", h.ResetScheduleOverride)
		})
		r.Route("/settings/biweekly-start-date", func(r chi.Router) {
			r.Get("/", h.GetBiweeklyStartDate)
			r.With(h.adminAuth).Put("/", h.SaveBiweeklyStartDate)
		})
	})

	h.Mux.Route("/handovers", func(r chi.Router) {
		r.Get("/", h.GetHandovers)
		r.Post("/", h.CreateHandover)
		r.Delete("/{id}", h.DeleteHandover)
	})

	h.Mux.Route("/reports", func(r chi.Router) {
		r.Post("/inventory", h.BuildInventoryReport)
		r.Post("/environment", h.BuildEnvironmentReport)
	})

	h.Mux.Route("/branch", func(r chi.Router) {
		r.Get("/", h.GetBranch)
		r.Get("/guides", h.GetGuideMessages)
	})
}
