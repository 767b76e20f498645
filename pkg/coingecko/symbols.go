package coingecko

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Ticker symbols of well-known coins mapped to their CoinGecko ids
var coinIds = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"XRP":   "ripple",
	"SOL":   "solana",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"MATIC": "matic-network",
	"UNI":   "uniswap",
	"SHIB":  "shiba-inu",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"ATOM":  "cosmos",
	"XLM":   "stellar",
	"ALGO":  "algorand",
	"FIL":   "filecoin",
	"NEAR":  "near",
	"APT":   "aptos",
	"ARB":   "arbitrum",
	"OP":    "optimism",
	"BNB":   "binancecoin",
	"TRX":   "tron",
	"ETC":   "ethereum-classic",
	"XMR":   "monero",
	"PEPE":  "pepe",
	"SUI":   "sui",
	"SEI":   "sei-network",
}

// Quote-currency suffixes commonly appended to crypto pairs
var quoteSuffixes = []string{"USDT", "USD", "EUR", "GBP"}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CoinId returns the CoinGecko id for a ticker symbol, if it is a
// well-known coin
func CoinId(symbol string) (string, bool) {
	id, ok := coinIds[strings.ToUpper(symbol)]
	return id, ok
}

// CryptoBase strips a trailing quote-currency suffix from a pair symbol,
// so that "BTCUSD" and "BTCUSDT" both resolve to "BTC"
func CryptoBase(symbol string) string {
	base := strings.ToUpper(symbol)
	for _, suffix := range quoteSuffixes {
		if strings.HasSuffix(base, suffix) && len(base) > len(suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}
