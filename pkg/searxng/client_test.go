package searxng_test

import (
	"flag"
	"log"
	"os"
	"strconv"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	searxng "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searxng"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	client *searxng.Client
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

	// SERVER URL
	url := os.Getenv("SEARXNG_URL")
	if url == "" {
		log.Print("SEARXNG_URL not set")
		os.Exit(0)
	}

	// Create client
	var err error
	client, err = searxng.New(url, opts.OptTrace(os.Stderr, verbose))
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

	items, err := client.Search(t.Context(), &searxng.SearchRequest{Query: "golang"})
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.NotEmpty(items)
	t.Log(items)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	results, err := client.ImageFetcher("")(t.Context(), "cats", 3)
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.LessOrEqual(len(results), 3)
	for _, result := range results {
		assert.True(len(result.ImageURL) > 0)
	}
	t.Log(results)
}
