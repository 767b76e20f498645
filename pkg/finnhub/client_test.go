package finnhub_test

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	coingecko "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/coingecko"
	finnhub "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/finnhub"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	client    *finnhub.Client
	financial tool.Tool
)

func TestMain(m *testing.M) {
	var verbose bool

	// Verbose output
	flag.Parse()
	if f := flag.Lookup("test.v"); f != nil {
		if v, err := strconv.ParseBool(f.Value.String()); err == nil {
			verbose = v
		}
	}

	// API KEY
	key := os.Getenv("FINNHUB_API_KEY")
	if key == "" {
		log.Print("FINNHUB_API_KEY not set")
		os.Exit(0)
	}

	// Create client
	var err error
	client, err = finnhub.New(key, opts.OptTrace(os.Stderr, verbose))
	if err != nil {
		log.Println(err)
		os.Exit(-1)
	}

	// Create tool
	crypto, err := coingecko.New(opts.OptTrace(os.Stderr, verbose))
	if err != nil {
		log.Println(err)
		os.Exit(-1)
	}
	financial, err = finnhub.NewTool(client, crypto)
	if err != nil {
		log.Println(err)
		os.Exit(-1)
	}

	os.Exit(m.Run())
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	assert.NotNil(client)
	t.Log(client)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	quote, err := client.GetQuote(t.Context(), "AAPL")
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Greater(quote.Current, 0.0)
	t.Log(quote)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	rates, err := client.GetRates(t.Context(), "USD")
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Contains(rates, "EUR")
	t.Log(rates)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	result, err := financial.Run(t.Context(), json.RawMessage(`{"query_type":"stock","symbol":"AAPL"}`))
	if !assert.NoError(err) {
		t.SkipNow()
	}
	t.Log(result)
}
