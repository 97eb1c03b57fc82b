package server

import (
	"net/http"
	"strconv"

	"github.com/bobmcallan/lever/internal/ingest"
	"github.com/bobmcallan/lever/internal/models"
	"github.com/bobmcallan/lever/internal/services/metrics"
)

// handlePortfolioImport parses a CSV portfolio file into a validated
// snapshot and echoes it back alongside its default metrics. The snapshot
// is not stored — callers feed it back into the analytics endpoints.
//
// Account balances normally come from the file's cash/margin_used columns;
// cash and margin_used query parameters override them when the balances
// arrive out of band.
func (s *Server) handlePortfolioImport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	body := http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit

	var portfolio *models.Portfolio
	var err error

	q := r.URL.Query()
	if q.Has("cash") || q.Has("margin_used") {
		cash, perr := parseQueryAmount(q.Get("cash"))
		if perr != nil {
			WriteError(w, http.StatusBadRequest, "Invalid cash parameter")
			return
		}
		marginUsed, perr := parseQueryAmount(q.Get("margin_used"))
		if perr != nil {
			WriteError(w, http.StatusBadRequest, "Invalid margin_used parameter")
			return
		}
		portfolio, err = ingest.ParseCSVWithAccount(body, cash, marginUsed)
	} else {
		portfolio, err = ingest.ParseCSV(body)
	}
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid CSV: "+err.Error())
		return
	}

	s.logger.Debug().
		Int("holdings", len(portfolio.Holdings)).
		Msg("Portfolio imported")

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"portfolio": portfolio,
		"metrics":   metrics.CalculateAllDefault(portfolio),
	})
}

// parseQueryAmount parses an optional numeric query parameter; an absent
// parameter is 0.
func parseQueryAmount(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
