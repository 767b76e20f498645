package wikipedia_test

import (
	"flag"
	"log"
	"os"
	"strconv"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	wikipedia "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/wikipedia"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	client *wikipedia.Client
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

	// Live tests are opt-in, the public API needs no credentials
	if os.Getenv("WIKIPEDIA_LIVE") == "" {
		log.Print("WIKIPEDIA_LIVE not set")
		os.Exit(0)
	}

	// Create client
	var err error
	client, err = wikipedia.New(opts.OptTrace(os.Stderr, verbose))
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

	hits, err := client.Search(t.Context(), "Alan Turing", 3)
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.NotEmpty(hits)
	t.Log(hits)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	summary, err := client.GetSummary(t.Context(), "Alan Turing")
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.NotEmpty(summary.Extract)
	assert.NotEqual("disambiguation", summary.Type)
	t.Log(summary)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	articles, err := client.ArticleFetcher(wikipedia.DetailConcise)(t.Context(), "Alan Turing", 1)
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Len(articles, 1)
	assert.NotEmpty(articles[0].Summary)
	t.Log(articles)
}
