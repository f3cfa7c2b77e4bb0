package screener

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

func newTestHandler(records map[string]*domain.FinancialFactRecord) *Handler {
	provider := &fakeProvider{records: records}
	service := NewService(provider, VariantConservative, zerolog.Nop())
	return NewHandler(service, zerolog.Nop())
}

func TestHandleScreen(t *testing.T) {
	handler := newTestHandler(map[string]*domain.FinancialFactRecord{
		"AAPL": strongRecord("AAPL"),
		"KO":   weakRecord("KO"),
	})

	body := `{"tickers": "ko, aapl"}`
	req := httptest.NewRequest(http.MethodPost, "/api/screen", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleScreen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp screenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "AAPL", resp.Results[0].Ticker, "stronger ticker ranks first")
	assert.Equal(t, "KO", resp.Results[1].Ticker)
}

func TestHandleScreenDropsUnknownTickers(t *testing.T) {
	handler := newTestHandler(map[string]*domain.FinancialFactRecord{
		"AAPL": strongRecord("AAPL"),
	})

	body := `{"tickers": "AAPL, NOPE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/screen", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleScreen(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp screenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestHandleScreenNoValidData(t *testing.T) {
	handler := newTestHandler(nil)

	body := `{"tickers": "AAPL"}`
	req := httptest.NewRequest(http.MethodPost, "/api/screen", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleScreen(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no valid data")
}

func TestHandleScreenBadRequests(t *testing.T) {
	handler := newTestHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{"tickers": `},
		{name: "no tickers", body: `{"tickers": ""}`},
		{name: "unknown variant", body: `{"tickers": "AAPL", "variant": "bold"}`},
		{name: "negative bond yield", body: `{"tickers": "AAPL", "bond_yield": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/screen", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.HandleScreen(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleExport(t *testing.T) {
	handler := newTestHandler(map[string]*domain.FinancialFactRecord{
		"AAPL": strongRecord("AAPL"),
	})

	body := `{"tickers": "AAPL"}`
	req := httptest.NewRequest(http.MethodPost, "/api/screen/export", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "screen.csv")

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AAPL", rows[1][0])
}
