package screener

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/modules/universe"
)

// Handler handles screener HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new screener handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "screener").Logger(),
	}
}

// screenRequest is the JSON body of a screen run
type screenRequest struct {
	Tickers   string  `json:"tickers"`    // free text: commas, spaces or newlines
	BondYield float64 `json:"bond_yield"` // optional AAA yield override
	Variant   string  `json:"variant"`    // optional rubric variant override
}

// screenResponse wraps the ranked table for JSON output
type screenResponse struct {
	Count   int         `json:"count"`
	Results RankedTable `json:"results"`
}

// HandleScreen handles POST / - run a screen over a ticker list
func (h *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	table, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, screenResponse{
		Count:   len(table),
		Results: table,
	})
}

// HandleExport handles POST /export - run a screen and return it as CSV
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	table, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="screen.csv"`)
	if err := WriteCSV(w, table); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV export")
	}
}

// HandleUpload handles POST /upload - run a screen from an uploaded CSV of
// ticker symbols (multipart form, field "file")
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tickers, err := universe.ParseTickersCSV(file)
	if err != nil {
		h.badTickers(w, err)
		return
	}

	table, ok := h.run(w, r, tickers, ScreenParams{})
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, screenResponse{
		Count:   len(table),
		Results: table,
	})
}

// runFromRequest decodes a JSON screen request and executes it. The bool is
// false when a response has already been written.
func (h *Handler) runFromRequest(w http.ResponseWriter, r *http.Request) (RankedTable, bool) {
	var req screenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return nil, false
	}

	if req.Variant != "" && !RubricVariant(req.Variant).Valid() {
		http.Error(w, fmt.Sprintf("Unknown rubric variant %q", req.Variant), http.StatusBadRequest)
		return nil, false
	}
	if req.BondYield < 0 {
		http.Error(w, "bond_yield must be positive", http.StatusBadRequest)
		return nil, false
	}

	tickers, err := universe.ParseTickers(req.Tickers)
	if err != nil {
		h.badTickers(w, err)
		return nil, false
	}

	return h.run(w, r, tickers, ScreenParams{
		BondYield: req.BondYield,
		Variant:   RubricVariant(req.Variant),
	})
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, tickers []string, params ScreenParams) (RankedTable, bool) {
	table, err := h.service.RunScreen(r.Context(), tickers, params)
	if errors.Is(err, ErrNoValidData) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "no valid data",
		})
		return nil, false
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Screen failed")
		http.Error(w, "Screen failed", http.StatusInternalServerError)
		return nil, false
	}
	return table, true
}

func (h *Handler) badTickers(w http.ResponseWriter, err error) {
	if errors.Is(err, universe.ErrNoTickers) {
		http.Error(w, "No tickers supplied", http.StatusBadRequest)
		return
	}
	http.Error(w, "Could not parse tickers", http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
