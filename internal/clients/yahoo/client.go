package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Andohkay1/Stock-screener/internal/domain"
)

const (
	quoteBaseURL        = "https://query1.finance.yahoo.com/v7/finance/quote"
	quoteSummaryBaseURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Client is a Yahoo Finance API client
type Client struct {
	client           *http.Client
	defaultBondYield float64
	log              zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(timeout time.Duration, defaultBondYield float64, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		defaultBondYield: defaultBondYield,
		log:              log.With().Str("client", "yahoo").Logger(),
	}
}

// Fetch retrieves the fundamentals snapshot for one ticker. Missing optional
// fields stay nil on the record; statement history failures degrade to an
// empty net-income series rather than failing the fetch.
func (c *Client) Fetch(ctx context.Context, ticker string) (*domain.FinancialFactRecord, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return nil, fmt.Errorf("empty ticker")
	}

	info, err := c.getQuoteInfo(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote info: %w", err)
	}

	record := &domain.FinancialFactRecord{
		Ticker:             symbol,
		TrailingEPS:        getFloat64(info, "epsTrailingTwelveMonths"),
		BookValuePerShare:  getFloat64(info, "bookValue"),
		TotalRevenue:       getFloat64OrZero(info, "totalRevenue"),
		CurrentRatio:       getFloat64OrZero(info, "currentRatio"),
		PriceToBook:        getFloat64OrZero(info, "priceToBook"),
		DividendRate:       getFloat64OrZero(info, "dividendRate"),
		SharesOutstanding:  getFloat64OrZero(info, "sharesOutstanding"),
		BondYieldReference: c.defaultBondYield,
		FetchedAt:          time.Now(),
	}

	// currentPrice first, regularMarketPrice as fallback
	if price := getFloat64(info, "currentPrice"); price != nil && *price > 0 {
		record.Price = price
	} else if price := getFloat64(info, "regularMarketPrice"); price != nil && *price > 0 {
		record.Price = price
	}

	// Statement history is supplementary: without it the EPS estimator falls
	// back to replicating trailing EPS, so a failure here only logs.
	if err := c.addStatementHistory(ctx, symbol, record); err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Failed to fetch statement history")
	}

	return record, nil
}

// addStatementHistory fills the net-income series and the estimated
// current-asset/liability lines from the quoteSummary statement modules.
func (c *Client) addStatementHistory(ctx context.Context, symbol string, record *domain.FinancialFactRecord) error {
	summary, err := c.getQuoteSummary(ctx, symbol)
	if err != nil {
		return err
	}

	// Income history arrives newest first; the estimator wants oldest first.
	statements := summary.IncomeStatementHistory.IncomeStatementHistory
	for i := len(statements) - 1; i >= 0; i-- {
		if ni := statements[i].NetIncome.Raw; ni != nil {
			record.NetIncomeSeries = append(record.NetIncomeSeries, *ni)
		}
	}

	sheets := summary.BalanceSheetHistory.BalanceSheetStatements
	if len(sheets) == 0 {
		return nil
	}
	latest := sheets[0]

	record.EstimatedCurrentAssets = aggregateOrSum(latest.TotalCurrentAssets,
		latest.Cash, latest.ShortTermInvestments, latest.NetReceivables,
		latest.Inventory, latest.OtherCurrentAssets)
	record.EstimatedCurrentLiabilities = aggregateOrSum(latest.TotalCurrentLiabilities,
		latest.AccountsPayable, latest.ShortLongTermDebt, latest.OtherCurrentLiab)

	return nil
}

// aggregateOrSum returns the aggregate line when present, otherwise the sum
// of the individual buckets.
func aggregateOrSum(aggregate rawValue, buckets ...rawValue) float64 {
	if aggregate.Raw != nil {
		return *aggregate.Raw
	}
	var sum float64
	for _, b := range buckets {
		if b.Raw != nil {
			sum += *b.Raw
		}
	}
	return sum
}

// getQuoteInfo fetches quote information from the Yahoo Finance quote API
func (c *Client) getQuoteInfo(ctx context.Context, symbol string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", "symbol,regularMarketPrice,currentPrice,epsTrailingTwelveMonths,"+
		"bookValue,totalRevenue,currentRatio,priceToBook,dividendRate,sharesOutstanding")

	body, err := c.get(ctx, quoteBaseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result quoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// getQuoteSummary fetches the statement-history modules from the quoteSummary API
func (c *Client) getQuoteSummary(ctx context.Context, symbol string) (*quoteSummaryModules, error) {
	params := url.Values{}
	params.Add("modules", "balanceSheetHistory,incomeStatementHistory")

	reqURL := quoteSummaryBaseURL + "/" + url.PathEscape(symbol) + "?" + params.Encode()

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var result quoteSummaryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteSummary.Error)
	}

	if len(result.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no summary data returned for symbol %s", symbol)
	}

	return &result.QuoteSummary.Result[0], nil
}

// get performs a GET request with browser-like headers
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Helper functions to safely extract values from map

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func getFloat64OrZero(m map[string]interface{}, key string) float64 {
	if val := getFloat64(m, key); val != nil {
		return *val
	}
	return 0
}
