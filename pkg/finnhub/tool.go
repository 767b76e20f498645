package finnhub

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	coingecko "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/coingecko"
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type financialTool struct {
	finnhub *Client
	crypto  *coingecko.Client
}

// Request defines the input for the financial data tool
type Request struct {
	QueryType    string   `json:"query_type" jsonschema:"'stock' for stock/equity price, 'currency' for exchange rate."`
	Symbol       string   `json:"symbol,omitempty" jsonschema:"Stock ticker (e.g. 'AAPL', 'TSLA') or crypto symbol (e.g. 'BTC', 'ETH'). Required for stock queries."`
	FromCurrency string   `json:"from_currency,omitempty" jsonschema:"Source currency code (e.g. 'USD'). Required for currency queries."`
	ToCurrency   string   `json:"to_currency,omitempty" jsonschema:"Target currency code (e.g. 'EUR'). Required for currency queries."`
	Amount       *float64 `json:"amount,omitempty" jsonschema:"Amount to convert. Default is 1."`
}

// QuoteResponse is the envelope for stock and crypto quotes
type QuoteResponse struct {
	Source        string   `json:"source"`
	QueryType     string   `json:"query_type"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Exchange      string   `json:"exchange"`
	Currency      string   `json:"currency"`
	CurrentPrice  float64  `json:"current_price"`
	Change        float64  `json:"change"`
	PercentChange float64  `json:"percent_change"`
	High          float64  `json:"high"`
	Low           float64  `json:"low"`
	Open          *float64 `json:"open,omitempty"`
	PreviousClose *float64 `json:"previous_close,omitempty"`
	MarketCap     float64  `json:"market_cap,omitempty"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Instruction   string   `json:"instruction"`
}

// CurrencyResponse is the envelope for currency conversions
type CurrencyResponse struct {
	Source          string  `json:"source"`
	QueryType       string  `json:"query_type"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	Rate            float64 `json:"rate"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Instruction     string  `json:"instruction"`
}

var _ tool.Tool = (*financialTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	stockInstruction = "Present the stock price naturally. Mention the company name, " +
		"current price with currency, and whether it's up or down today " +
		"with the change amount and percentage."

	cryptoInstruction = "Present the cryptocurrency price naturally. Mention the coin name, " +
		"current price in USD, and whether it's up or down in the last 24 hours " +
		"with the change amount and percentage."

	currencyInstruction = "Present the currency conversion naturally. " +
		"State the converted amount and the exchange rate."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool creates the financial data tool. The CoinGecko client serves
// crypto symbols; stock symbols go to Finnhub.
func NewTool(client *Client, crypto *coingecko.Client) (tool.Tool, error) {
	return &financialTool{
		finnhub: client,
		crypto:  crypto,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*financialTool) Name() string {
	return "get_financial_data"
}

func (*financialTool) Description() string {
	return "Get stock prices, cryptocurrency prices, or convert currencies. " +
		"Use query_type 'stock' with a ticker symbol (e.g. 'AAPL', 'TSLA', 'MSFT') " +
		"or a crypto symbol (e.g. 'BTC', 'ETH', 'DOGE') to get the current price. " +
		"Use query_type 'currency' with from_currency and to_currency codes " +
		"(e.g. 'USD', 'EUR', 'GBP') to get exchange rates or convert amounts."
}

func (*financialTool) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Request](nil)
	if err != nil {
		return nil, err
	}
	if field, ok := schema.Properties["query_type"]; ok && field != nil {
		field.Enum = []any{"stock", "currency"}
	}
	return schema, nil
}

func (t *financialTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req Request
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return searchtool.Errorf("Financial data lookup failed: %v", err), nil
		}
	}

	switch req.QueryType {
	case "stock":
		return t.handleStock(ctx, &req), nil
	case "currency":
		return t.handleCurrency(ctx, &req), nil
	}
	return searchtool.Errorf("Unknown query_type: %s", req.QueryType), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// handleStock resolves a stock or crypto quote. Known crypto symbols are
// quoted via CoinGecko first; a symbol unknown to the exchange feed gets a
// crypto retry as last resort before reporting failure.
func (t *financialTool) handleStock(ctx context.Context, req *Request) any {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return searchtool.Errorf("Stock ticker symbol is required for stock queries.")
	}

	base := coingecko.CryptoBase(symbol)
	if response := t.cryptoQuote(ctx, base); response != nil {
		return *response
	}

	quote, err := t.finnhub.GetQuote(ctx, symbol)
	if err != nil {
		return searchtool.Errorf("Financial data lookup failed: %v", err)
	}
	if quote.Current == 0 {
		if response := t.cryptoQuote(ctx, base); response != nil {
			return *response
		}
		return searchtool.Errorf("Financial data lookup failed: no quote data found for symbol '%s'. Check that the ticker is valid.", symbol)
	}

	// Profile failure loses the name and logo, not the quote
	profile, _ := t.finnhub.GetProfile(ctx, symbol)
	currency := profile.Currency
	if currency == "" {
		currency = "USD"
	}

	open := quote.Open
	previousClose := quote.PreviousClose
	return QuoteResponse{
		Source:        "finnhub",
		QueryType:     "stock",
		Symbol:        symbol,
		Name:          profile.Name,
		Exchange:      profile.Exchange,
		Currency:      currency,
		CurrentPrice:  quote.Current,
		Change:        quote.Change,
		PercentChange: quote.PercentChange,
		High:          quote.High,
		Low:           quote.Low,
		Open:          &open,
		PreviousClose: &previousClose,
		FeaturedImage: profile.Logo,
		Instruction:   stockInstruction,
	}
}

// cryptoQuote returns a crypto quote for a known base symbol, or nil when
// the symbol is unknown or the lookup fails
func (t *financialTool) cryptoQuote(ctx context.Context, base string) *QuoteResponse {
	id, ok := coingecko.CoinId(base)
	if !ok || t.crypto == nil {
		return nil
	}

	coins, err := t.crypto.Markets(ctx, id)
	if err != nil || len(coins) == 0 {
		return nil
	}

	coin := coins[0]
	return &QuoteResponse{
		Source:        "coingecko",
		QueryType:     "crypto",
		Symbol:        strings.ToUpper(coin.Symbol),
		Name:          coin.Name,
		Exchange:      "Crypto",
		Currency:      "USD",
		CurrentPrice:  coin.CurrentPrice,
		Change:        coin.PriceChange24h,
		PercentChange: coin.PriceChangePercentage24h,
		High:          coin.High24h,
		Low:           coin.Low24h,
		MarketCap:     coin.MarketCap,
		FeaturedImage: coin.Image,
		Instruction:   cryptoInstruction,
	}
}

func (t *financialTool) handleCurrency(ctx context.Context, req *Request) any {
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrency))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrency))
	if from == "" || to == "" {
		return searchtool.Errorf("Both from_currency and to_currency are required for currency queries.")
	}

	amount := 1.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	rates, err := t.finnhub.GetRates(ctx, from)
	if err != nil {
		return searchtool.Errorf("Financial data lookup failed: %v", err)
	}
	rate, ok := rates[to]
	if !ok {
		return searchtool.Errorf("Financial data lookup failed: exchange rate for %s to %s not available.", from, to)
	}

	return CurrencyResponse{
		Source:          "finnhub",
		QueryType:       "currency",
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            round(rate, 6),
		Amount:          amount,
		ConvertedAmount: round(amount*rate, 2),
		Instruction:     currencyInstruction,
	}
}

// round rounds to a fixed number of decimal places
func round(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}
