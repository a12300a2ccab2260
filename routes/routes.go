package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/court-booking/handlers"
	"github.com/Dosada05/court-booking/metrics"
	"github.com/Dosada05/court-booking/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/court-booking/docs"
)

// Handlers собирает все HTTP-обработчики для SetupRoutes.
type Handlers struct {
	Auth            *handlers.AuthHandler
	Player          *handlers.PlayerHandler
	Court           *handlers.CourtHandler
	Discount        *handlers.DiscountHandler
	Expense         *handlers.ExpenseHandler
	Session         *handlers.SessionHandler
	SessionPlayer   *handlers.SessionPlayerHandler
	SessionDiscount *handlers.SessionDiscountHandler
	SessionExpense  *handlers.SessionExpenseHandler
	WebSocket       *handlers.WebSocketHandler
	Health          *handlers.HealthHandler
}

type Options struct {
	CORSOrigin string
	Tokens     middleware.TokenParser
	Metrics    *metrics.Registry
	Logger     *slog.Logger
}

func SetupRoutes(r chi.Router, h Handlers, opts Options) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chiMiddleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", h.Health.Health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	authenticate := middleware.Authenticate(opts.Tokens)

	r.Route("/auth", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(15 * time.Second))
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Post("/refresh-token", h.Auth.RefreshToken)
		r.Post("/forgot-password", h.Auth.ForgotPassword)
		r.Post("/reset-password", h.Auth.ResetPassword)
	})

	r.Route("/players", func(r chi.Router) {
		// Регистрация игрока открыта.
		r.Post("/", h.Player.CreatePlayer)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", h.Player.GetPlayers)
			r.Get("/{id}", h.Player.GetPlayer)
			r.Put("/{id}", h.Player.UpdatePlayer)
			r.Delete("/{id}", h.Player.DeletePlayer)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/courts", func(r chi.Router) {
			r.Get("/", h.Court.GetCourts)
			r.Post("/", h.Court.CreateCourt)
			r.Get("/{id}", h.Court.GetCourt)
			r.Put("/{id}", h.Court.UpdateCourt)
			r.Delete("/{id}", h.Court.DeleteCourt)
			r.Post("/{id}/image", h.Court.UploadCourtImage)
		})

		r.Route("/discounts", func(r chi.Router) {
			r.Get("/", h.Discount.GetDiscounts)
			r.Post("/", h.Discount.CreateDiscount)
			r.Get("/{id}", h.Discount.GetDiscount)
			r.Put("/{id}", h.Discount.UpdateDiscount)
			r.Delete("/{id}", h.Discount.DeleteDiscount)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.Expense.GetExpenses)
			r.Post("/", h.Expense.CreateExpense)
			r.Get("/{id}", h.Expense.GetExpense)
			r.Put("/{id}", h.Expense.UpdateExpense)
			r.Delete("/{id}", h.Expense.DeleteExpense)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", h.Session.GetSessions)
			r.Post("/", h.Session.CreateSessions)
			r.Get("/{id}", h.Session.GetSession)
			r.Put("/{id}", h.Session.UpdateSession)
			r.Delete("/{id}", h.Session.DeleteSession)
		})

		r.Route("/session-player", func(r chi.Router) {
			r.Get("/", h.SessionPlayer.GetSessionPlayers)
			r.Post("/", h.SessionPlayer.CreateSessionPlayer)
			r.Get("/{id}", h.SessionPlayer.GetSessionPlayer)
			r.Put("/{id}", h.SessionPlayer.UpdateSessionPlayer)
			r.Delete("/{id}", h.SessionPlayer.DeleteSessionPlayer)
		})

		r.Route("/session-discount", func(r chi.Router) {
			r.Get("/", h.SessionDiscount.GetSessionDiscounts)
			r.Post("/", h.SessionDiscount.CreateSessionDiscount)
			r.Get("/{id}", h.SessionDiscount.GetSessionDiscount)
			r.Put("/{id}", h.SessionDiscount.UpdateSessionDiscount)
			r.Delete("/{id}", h.SessionDiscount.DeleteSessionDiscount)
		})

		r.Route("/session-expenses", func(r chi.Router) {
			r.Get("/", h.SessionExpense.GetSessionExpenses)
			r.Post("/", h.SessionExpense.CreateSessionExpense)
			r.Get("/{id}", h.SessionExpense.GetSessionExpense)
			r.Put("/{id}", h.SessionExpense.UpdateSessionExpense)
			r.Delete("/{id}", h.SessionExpense.DeleteSessionExpense)
		})
	})

	// Браузерный WebSocket не умеет слать Authorization, поэтому лента открыта.
	r.Get("/ws/courts/{courtID}", h.WebSocket.ServeCourtFeed)
}
