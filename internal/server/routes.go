package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/lever/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Analytics
	mux.HandleFunc("/api/analytics/metrics", s.handleMetrics)
	mux.HandleFunc("/api/analytics/stress", s.handleStress)
	mux.HandleFunc("/api/analytics/var", s.handleVaR)
	mux.HandleFunc("/api/analytics/margin-call", s.handleMarginCall)
	mux.HandleFunc("/api/analytics/concentration", s.handleConcentration)
	mux.HandleFunc("/api/analytics/dividends", s.handleDividends)
	mux.HandleFunc("/api/analytics/hedges", s.handleHedges)

	// Ingestion
	mux.HandleFunc("/api/portfolios/import", s.handlePortfolioImport)

	// Dev-mode shutdown
	mux.HandleFunc("/api/shutdown", s.handleShutdown)
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config
	uptime := time.Since(s.app.StartupTime).Round(time.Second)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":          cfg.Environment,
		"logging_level":        cfg.Logging.Level,
		"uptime":               uptime.String(),
		"started_at":           s.app.StartupTime,
		"initial_margin_req":   cfg.Analytics.InitialMarginReq,
		"maint_margin_req":     cfg.Analytics.MaintMarginReq,
		"margin_interest_rate": cfg.Analytics.MarginInterestRate,
		"dividend_growth_rate": cfg.Analytics.DividendGrowthRate,
		"projection_years":     cfg.Analytics.ProjectionYears,
		"daily_volatility":     cfg.Analytics.DailyVolatility,
		"simulations":          cfg.Analytics.Simulations,
		"max_simulations":      cfg.Analytics.MaxSimulations,
		"max_horizon_days":     cfg.Analytics.MaxHorizonDays,
	})
}
