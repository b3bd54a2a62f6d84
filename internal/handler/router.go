package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/randorium/randorium-go/internal/middleware"
	"github.com/randorium/randorium-go/internal/service"
)

// Services are the application services behind the router. Auth and the
// storage-backed parts of Dice and Prompt are optional: when Auth is nil the
// account, history and saved prompt routes are not registered.
type Services struct {
	Generator *service.GeneratorService
	Dice      *service.DiceService
	Prompt    *service.PromptService
	Auth      *service.AuthService
}

// RouterConfig holds the HTTP-level settings.
type RouterConfig struct {
	ServiceName string
	JWTSecret   string
	PromptRate  float64
	PromptBurst int
	AuthRate    float64
	AuthBurst   int
}

// NewRouter builds the API router. Background work started by the rate
// limiters stops when ctx is done.
func NewRouter(ctx context.Context, svcs Services, cfg RouterConfig) http.Handler {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "randorium"
	}
	if cfg.AuthRate == 0 {
		cfg.AuthRate, cfg.AuthBurst = 5, 10
	}

	genHandler := NewGeneratorHandler(svcs.Generator)
	diceHandler := NewDiceHandler(svcs.Dice)
	promptHandler := NewPromptHandler(svcs.Prompt)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(otelchi.Middleware(cfg.ServiceName, otelchi.WithChiRoutes(r)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/password/generate", genHandler.HandleGenerate)

		r.Get("/dice", diceHandler.HandleListDice)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.PromptRate, cfg.PromptBurst))
			r.Post("/prompts/generate", promptHandler.HandleGenerate)
		})

		if svcs.Auth == nil {
			r.Post("/dice/roll", diceHandler.HandleRoll)
			return
		}

		authHandler := NewAuthHandler(svcs.Auth)

		r.With(middleware.OptionalJWTAuth(cfg.JWTSecret)).Post("/dice/roll", diceHandler.HandleRoll)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.AuthRate, cfg.AuthBurst))
			r.Post("/auth/register", authHandler.HandleRegister)
			r.Post("/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/auth/me", authHandler.HandleMe)

			r.Get("/dice/history", diceHandler.HandleHistory)
			r.Delete("/dice/history", diceHandler.HandleClearHistory)

			r.Get("/prompts/saved", promptHandler.HandleList)
			r.Post("/prompts/saved", promptHandler.HandleSave)
			r.Delete("/prompts/saved/{prompt_id}", promptHandler.HandleDelete)
		})
	})

	return r
}
