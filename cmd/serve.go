package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/harborwatch/route-risk/internal/config"
	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/internal/monitoring"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the route risk assessment API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx, "serve", true)
		if err != nil {
			return err
		}
		defer env.Close()

		// Background alert checks against the audit log.
		checker := monitoring.NewChecker(
			monitoring.NewCollector(env.Store, env.Breaker),
			monitoring.NewAlerter(cfg.Alerting),
			cfg.Monitoring,
		)
		go checker.Run(ctx)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env, cfg.Server, checker),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the HTTP route tree. checker may be nil (no background
// monitoring loop); /health then omits the audit snapshot.
func newRouter(env *appEnv, serverCfg config.ServerConfig, checker *monitoring.Checker) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: serverCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if serverCfg.RateLimitRPS > 0 {
		r.Use(rateLimit(rate.Limit(serverCfg.RateLimitRPS), serverCfg.RateLimitBurst))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		body := map[string]any{
			"status":  "ok",
			"circuit": env.Breaker.State().String(),
		}
		if checker != nil {
			if snap := checker.LastSnapshot(); snap != nil {
				body["audit"] = snap
			}
		}
		writeJSON(w, http.StatusOK, body)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/assessments", handleAssess(env))
		r.Get("/assessments/{id}", handleGetAssessment(env))
		r.Get("/ports", handleListPorts(env))
		r.Get("/ports/search", handleSearchPorts(env))
		r.Get("/ports/{name}", handleGetPort(env))
		r.Get("/countries/{name}", handleGetCountry(env))
		r.Get("/routes/hazards", handleRouteHazards(env))
	})

	return r
}

// rateLimit applies a global token bucket across all clients.
func rateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type assessRequest struct {
	DeparturePort   string `json:"departure_port"`
	DestinationPort string `json:"destination_port"`
	DepartureDate   string `json:"departure_date"` // YYYY-MM-DD
	CarrierName     string `json:"carrier_name"`
	GoodsType       string `json:"goods_type"`
}

func handleAssess(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		date, err := parseDate(req.DepartureDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "departure_date must be YYYY-MM-DD")
			return
		}

		a, err := env.Pipeline.Assess(r.Context(), model.RouteQuery{
			DeparturePort:   req.DeparturePort,
			DestinationPort: req.DestinationPort,
			DepartureDate:   date,
			CarrierName:     req.CarrierName,
			GoodsType:       req.GoodsType,
		})
		if err != nil {
			status := http.StatusBadRequest
			if eris.Is(err, model.ErrLocationNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func handleGetAssessment(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := env.Store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func handleListPorts(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ports := env.Refdata.Ports()
		if region := r.URL.Query().Get("region"); region != "" {
			ports = env.Refdata.PortsByRegion(region)
		} else if country := r.URL.Query().Get("country"); country != "" {
			ports = env.Refdata.PortsByCountry(country)
		}
		writeJSON(w, http.StatusOK, map[string]any{"ports": ports, "count": len(ports)})
	}
}

func handleSearchPorts(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit := 10
		if l := r.URL.Query().Get("limit"); l != "" {
			if _, err := fmt.Sscanf(l, "%d", &limit); err != nil || limit < 1 || limit > 50 {
				writeError(w, http.StatusBadRequest, "limit must be 1-50")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": env.Refdata.Search(q, limit)})
	}
}

func handleGetPort(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := env.Refdata.Lookup(chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, http.StatusNotFound, "port not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"port":     rec,
			"security": env.Refdata.SecurityProfile(rec),
		})
	}
}

func handleGetCountry(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, env.Refdata.CountryProfile(chi.URLParam(r, "name")))
	}
}

func handleRouteHazards(env *appEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dep, err := env.Refdata.Lookup(r.URL.Query().Get("departure"))
		if err != nil {
			writeError(w, http.StatusNotFound, "departure port not found")
			return
		}
		dest, err := env.Refdata.Lookup(r.URL.Query().Get("destination"))
		if err != nil {
			writeError(w, http.StatusNotFound, "destination port not found")
			return
		}
		writeJSON(w, http.StatusOK, env.Refdata.HazardsFor(dep, dest))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
