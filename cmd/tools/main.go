package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	registry "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/registry"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config string `name:"config" env:"TOOLS_CONFIG" default:"tools.yaml" help:"Path to the tool configuration file"`

	// Context
	ctx      context.Context
	registry *registry.Registry
}

type CLI struct {
	Globals

	Tools   ListToolsCmd `cmd:"" help:"List the enabled tools"`
	Run     RunToolCmd   `cmd:"" help:"Run a tool with a JSON payload"`
	Prompts PromptsCmd   `cmd:"" help:"Print the prompt fragments for the enabled tools"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("LLM tool command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Load the configuration and build the registry
	config, err := registry.LoadConfig(cli.Config)
	cmd.FatalIfErrorf(err)

	r, err := registry.New(config, registry.WithClientOpts(clientopts...))
	cmd.FatalIfErrorf(err)
	cli.Globals.registry = r

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
