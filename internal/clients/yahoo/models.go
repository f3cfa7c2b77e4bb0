package yahoo

// quoteResponse represents the response from the Yahoo Finance quote API
type quoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// rawValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper
type rawValue struct {
	Raw *float64 `json:"raw"`
}

// balanceSheetStatement holds the current-asset and current-liability lines of
// one annual balance sheet. Individual buckets are kept so an estimate can be
// summed when the aggregate line is missing.
type balanceSheetStatement struct {
	TotalCurrentAssets      rawValue `json:"totalCurrentAssets"`
	Cash                    rawValue `json:"cash"`
	ShortTermInvestments    rawValue `json:"shortTermInvestments"`
	NetReceivables          rawValue `json:"netReceivables"`
	Inventory               rawValue `json:"inventory"`
	OtherCurrentAssets      rawValue `json:"otherCurrentAssets"`
	TotalCurrentLiabilities rawValue `json:"totalCurrentLiabilities"`
	AccountsPayable         rawValue `json:"accountsPayable"`
	ShortLongTermDebt       rawValue `json:"shortLongTermDebt"`
	OtherCurrentLiab        rawValue `json:"otherCurrentLiab"`
}

// incomeStatement holds one annual income statement row
type incomeStatement struct {
	EndDate   rawValue `json:"endDate"`
	NetIncome rawValue `json:"netIncome"`
}

// quoteSummaryModules holds the statement-history modules of one symbol
type quoteSummaryModules struct {
	BalanceSheetHistory struct {
		BalanceSheetStatements []balanceSheetStatement `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistory"`
	IncomeStatementHistory struct {
		IncomeStatementHistory []incomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`
}

// quoteSummaryResponse represents the response from the quoteSummary API
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryModules `json:"result"`
		Error  interface{}           `json:"error"`
	} `json:"quoteSummary"`
}
