package server

import (
	"math"
	"net/http"
	"time"

	"github.com/bobmcallan/lever/internal/models"
	"github.com/bobmcallan/lever/internal/services/dividend"
	"github.com/bobmcallan/lever/internal/services/hedge"
	"github.com/bobmcallan/lever/internal/services/metrics"
	"github.com/bobmcallan/lever/internal/services/risk"
)

// metricsRequest carries a snapshot plus optional margin requirement
// overrides. Absent overrides fall back to the configured defaults.
type metricsRequest struct {
	Portfolio        *models.Portfolio `json:"portfolio"`
	InitialMarginReq *float64          `json:"initial_margin_req"`
	MaintMarginReq   *float64          `json:"maint_margin_req"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req metricsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	initial := s.app.Config.Analytics.InitialMarginReq
	if req.InitialMarginReq != nil {
		initial = *req.InitialMarginReq
	}
	maint := s.app.Config.Analytics.MaintMarginReq
	if req.MaintMarginReq != nil {
		maint = *req.MaintMarginReq
	}

	WriteJSON(w, http.StatusOK, metrics.CalculateAll(req.Portfolio, initial, maint))
}

type stressRequest struct {
	Portfolio *models.Portfolio `json:"portfolio"`
	Scenarios []float64         `json:"scenarios"`
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req stressRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	drops := req.Scenarios
	if len(drops) == 0 {
		drops = risk.DefaultScenarios
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": risk.RunScenarios(req.Portfolio, drops),
	})
}

type varRequest struct {
	Portfolio       *models.Portfolio `json:"portfolio"`
	ConfidenceLevel float64           `json:"confidence_level"`
	TimeHorizonDays int               `json:"time_horizon_days"`
	DailyVolatility *float64          `json:"daily_volatility"`
	Simulations     *int              `json:"simulations"`
	Seed            *int64            `json:"seed"`
}

func (s *Server) handleVaR(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req varRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if req.ConfidenceLevel <= 0 || req.ConfidenceLevel >= 1 {
		WriteError(w, http.StatusBadRequest, "confidence_level must be in (0, 1)")
		return
	}

	cfg := s.app.Config.Analytics

	horizon := req.TimeHorizonDays
	if horizon < 1 {
		WriteError(w, http.StatusBadRequest, "time_horizon_days must be at least 1")
		return
	}
	if horizon > cfg.MaxHorizonDays {
		horizon = cfg.MaxHorizonDays
	}

	vol := cfg.DailyVolatility
	if req.DailyVolatility != nil {
		vol = *req.DailyVolatility
	}

	sims := cfg.Simulations
	if req.Simulations != nil {
		sims = *req.Simulations
	}
	// The engine itself never rejects; the caller-facing cap lives here.
	if sims > cfg.MaxSimulations {
		sims = cfg.MaxSimulations
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	WriteJSON(w, http.StatusOK, risk.CalculateVaR(req.Portfolio, req.ConfidenceLevel, horizon, vol, sims, risk.NewSource(seed)))
}

type marginCallRequest struct {
	Portfolio      *models.Portfolio `json:"portfolio"`
	MaintMarginReq *float64          `json:"maint_margin_req"`
}

func (s *Server) handleMarginCall(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req marginCallRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	maint := s.app.Config.Analytics.MaintMarginReq
	if req.MaintMarginReq != nil {
		maint = *req.MaintMarginReq
	}

	WriteJSON(w, http.StatusOK, risk.MarginCallThreshold(req.Portfolio, maint))
}

type concentrationRequest struct {
	Portfolio *models.Portfolio `json:"portfolio"`
}

func (s *Server) handleConcentration(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req concentrationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var holdings []models.Holding
	if req.Portfolio != nil {
		holdings = req.Portfolio.Holdings
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"assessment": risk.AnalyzeConcentration(holdings),
	})
}

type dividendsRequest struct {
	Portfolio  *models.Portfolio `json:"portfolio"`
	Years      *int              `json:"years"`
	GrowthRate *float64          `json:"growth_rate"`
	MarginRate *float64          `json:"margin_rate"`
}

// dividendsResponse renders the analyzer's numeric sentinels as JSON-safe
// strings: +Inf coverage becomes "Infinity", an impossible payoff becomes
// "N/A".
type dividendsResponse struct {
	YieldOnCost       float64                  `json:"yield_on_cost"`
	Projection        []models.ProjectionPoint `json:"projection"`
	MarginCoverage    string                   `json:"margin_coverage"`
	MarginPayoffYears string                   `json:"margin_payoff_years"`
}

func (s *Server) handleDividends(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req dividendsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cfg := s.app.Config.Analytics

	years := cfg.ProjectionYears
	if req.Years != nil {
		years = *req.Years
	}
	growth := cfg.DividendGrowthRate
	if req.GrowthRate != nil {
		growth = *req.GrowthRate
	}
	marginRate := cfg.MarginInterestRate
	if req.MarginRate != nil {
		marginRate = *req.MarginRate
	}

	var holdings []models.Holding
	marginUsed := 0.0
	if req.Portfolio != nil {
		holdings = req.Portfolio.Holdings
		marginUsed = req.Portfolio.MarginUsed
	}

	resp := dividendsResponse{
		YieldOnCost: dividend.YieldOnCost(holdings),
		Projection:  dividend.Project(holdings, years, growth, time.Now()),
	}

	coverage := dividend.MarginCoverage(holdings, marginUsed, marginRate)
	if math.IsInf(coverage, 1) {
		resp.MarginCoverage = "Infinity"
	} else {
		resp.MarginCoverage = models.FormatAmount(coverage)
	}

	if years, ok := dividend.MarginPayoffYears(holdings, marginUsed); ok {
		resp.MarginPayoffYears = models.FormatAmount(years)
	} else {
		resp.MarginPayoffYears = models.NotApplicable
	}

	WriteJSON(w, http.StatusOK, resp)
}

type hedgesRequest struct {
	Strike      float64 `json:"strike"`
	Premium     float64 `json:"premium"`
	LongStrike  float64 `json:"long_strike"`
	ShortStrike float64 `json:"short_strike"`
	NetPremium  float64 `json:"net_premium"`
	CostBasis   float64 `json:"cost_basis"`
	Contracts   *int    `json:"contracts"`
}

func (s *Server) handleHedges(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req hedgesRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	contracts := 1
	if req.Contracts != nil {
		contracts = *req.Contracts
	}

	longStrike := req.LongStrike
	if longStrike == 0 {
		longStrike = req.Strike
	}

	payoffs := []models.HedgePayoff{
		hedge.LongPut(req.Strike, req.Premium, contracts),
		hedge.BearPutSpread(longStrike, req.ShortStrike, req.NetPremium, contracts),
		hedge.CashSecuredPut(req.Strike, req.Premium, contracts),
		hedge.CoveredCall(req.Strike, req.Premium, req.CostBasis, contracts),
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payoffs": payoffs,
	})
}
