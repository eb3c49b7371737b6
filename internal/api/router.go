package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finsight/finsight-backend/internal/api/httpx"
	"github.com/finsight/finsight-backend/internal/api/validate"
	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/finsight/finsight-backend/internal/config"
	"github.com/finsight/finsight-backend/internal/middleware"
	"github.com/finsight/finsight-backend/internal/models"
	"github.com/finsight/finsight-backend/internal/services"
)

type Deps struct {
	Cfg        config.Config
	TM         *auth.TokenManager
	UserSvc    *services.UserService
	BudgetSvc  *services.BudgetService
	ProfileSvc *services.ProfileService
	RiskSvc    *services.RiskService
	GoalSvc    *services.GoalService
	ChatSvc    *services.ChatService
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	authmw := middleware.NewAuthMiddleware(d.TM, d.Cfg.Env)

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Name, Email, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
			}
			var errs validate.Errs
			for _, f := range []struct{ name, val string }{{"name", req.Name}, {"email", req.Email}, {"password", req.Password}} {
				if e := validate.Required(f.name, f.val); e != nil { errs = append(errs, *e) }
			}
			if len(errs) > 0 {
				httpx.WriteError(w, http.StatusBadRequest, "validation", errs.Error(), errs); return
			}
			u, err := d.UserSvc.Register(req.Name, req.Email, req.Password)
			if err != nil { httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil); return }
			httpx.WriteJSON(w, http.StatusCreated, u)
		})

		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ Email, Password string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
			}
			u, tokens, err := d.UserSvc.Login(req.Email, req.Password)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil); return
			}
			httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": u, "tokens": tokens})
		})

		r.Post("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			var req struct{ RefreshToken string `json:"refresh_token"` }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "refresh_token required", nil); return
			}
			tokens, err := d.UserSvc.Refresh(req.RefreshToken)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "invalid refresh token", nil); return
			}
			httpx.WriteJSON(w, http.StatusOK, tokens)
		})

		// ---------- authenticated ----------
		r.Group(func(r chi.Router) {
			r.Use(authmw.Auth)

			// users
			r.With(middleware.RequireRole("admin")).Get("/users", func(w http.ResponseWriter, r *http.Request) {
				users, err := d.UserSvc.List()
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, users)
			})

			r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				u, err := d.UserSvc.Get(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, u)
			})

			r.Put("/me", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct{ Name, Email string }
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
				}
				u, err := d.UserSvc.UpdateDetails(uid, req.Name, req.Email)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, u)
			})

			// ---------- budgets ----------
			r.Get("/budgets", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				budgets, err := d.BudgetSvc.List(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, budgets)
			})

			r.Post("/budgets", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					Month       string  `json:"month"`
					SavingsGoal float64 `json:"savings_goal"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
				}
				b, err := d.BudgetSvc.Create(uid, req.Month, req.SavingsGoal)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusCreated, b)
			})

			r.Get("/budgets/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				b, err := d.BudgetSvc.Get(chi.URLParam(r, "id"), uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, b)
			})

			// ---------- incomes ----------
			r.Get("/incomes", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				incomes, err := d.BudgetSvc.ListIncomes(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, incomes)
			})

			r.Post("/incomes", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					BudgetID string    `json:"budget_id"`
					Source   string    `json:"source"`
					Amount   float64   `json:"amount"`
					Date     time.Time `json:"date"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BudgetID == "" {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "budget_id required", nil); return
				}
				in, err := d.BudgetSvc.AddIncome(r.Context(), uid, req.BudgetID, req.Source, req.Amount, req.Date)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusCreated, in)
			})

			r.Put("/incomes/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					Source string    `json:"source"`
					Amount float64   `json:"amount"`
					Date   time.Time `json:"date"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
				}
				in, err := d.BudgetSvc.UpdateIncome(r.Context(), uid, chi.URLParam(r, "id"), req.Source, req.Amount, req.Date)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, in)
			})

			r.Delete("/incomes/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				if err := d.BudgetSvc.DeleteIncome(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
					writeSvcError(w, err); return
				}
				httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "income deleted"})
			})

			// ---------- expenses ----------
			r.Get("/expenses", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				expenses, err := d.BudgetSvc.ListExpenses(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, expenses)
			})

			r.Post("/expenses", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					BudgetID string    `json:"budget_id"`
					Category string    `json:"category"`
					Amount   float64   `json:"amount"`
					Date     time.Time `json:"date"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BudgetID == "" {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "budget_id required", nil); return
				}
				ex, err := d.BudgetSvc.AddExpense(r.Context(), uid, req.BudgetID, req.Category, req.Amount, req.Date)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusCreated, ex)
			})

			r.Put("/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					Category string    `json:"category"`
					Amount   float64   `json:"amount"`
					Date     time.Time `json:"date"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
				}
				ex, err := d.BudgetSvc.UpdateExpense(r.Context(), uid, chi.URLParam(r, "id"), req.Category, req.Amount, req.Date)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, ex)
			})

			r.Delete("/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				if err := d.BudgetSvc.DeleteExpense(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
					writeSvcError(w, err); return
				}
				httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
			})

			// ---------- derived metrics ----------
			r.Get("/financial-profile", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				p, err := d.ProfileSvc.GetOrCreate(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, p)
			})

			r.Post("/credit-risk", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				a, err := d.RiskSvc.Assess(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, a)
			})

			r.Post("/goal-planning", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct {
					GoalName        string  `json:"goal_name"`
					TargetAmount    float64 `json:"target_amount"`
					TimeframeMonths int     `json:"timeframe_months"`
					CurrentSavings  float64 `json:"current_savings"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil); return
				}
				plan, err := d.GoalSvc.Plan(r.Context(), uid, req.GoalName, req.TargetAmount, req.TimeframeMonths, req.CurrentSavings)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, plan)
			})

			r.Get("/goal-planning/suggestions", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				suggestions, err := d.GoalSvc.Suggestions(r.Context(), uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, suggestions)
			})

			r.Get("/goals", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				goals, err := d.GoalSvc.List(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, goals)
			})

			r.Patch("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct{ Status models.GoalStatus `json:"status"` }
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "status required", nil); return
				}
				g, err := d.GoalSvc.UpdateStatus(chi.URLParam(r, "id"), uid, req.Status)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, g)
			})

			// ---------- chat ----------
			r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				var req struct{ Query string `json:"query"` }
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "query required", nil); return
				}
				response, err := d.ChatSvc.Query(r.Context(), uid, req.Query)
				if err != nil {
					httpx.WriteError(w, http.StatusBadGateway, "advisor_unavailable", "advisor unavailable", nil); return
				}
				httpx.WriteJSON(w, http.StatusOK, map[string]string{"response": response})
			})

			r.Get("/chat/messages", func(w http.ResponseWriter, r *http.Request) {
				uid, _ := middleware.UserID(r.Context())
				messages, err := d.ChatSvc.History(uid)
				if err != nil { writeSvcError(w, err); return }
				httpx.WriteJSON(w, http.StatusOK, map[string]any{"message_data": messages})
			})
		})
	})

	return r
}

// writeSvcError maps service sentinels to HTTP statuses. Unknown errors
// surface as 400s; panics are already turned into 500s by the recover
// middleware.
func writeSvcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		httpx.WriteError(w, http.StatusNotFound, "profile_not_found",
			"Financial profile not found. Please complete your financial profile first.", nil)
	case errors.Is(err, services.ErrBudgetNotFound),
		errors.Is(err, services.ErrIncomeNotFound),
		errors.Is(err, services.ErrExpenseNotFound),
		errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	default:
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
	}
}
