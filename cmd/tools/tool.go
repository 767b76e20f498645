package main

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListToolsCmd struct {
	Schema bool `name:"schema" help:"Include the JSON schema for each tool"`
}

type RunToolCmd struct {
	Name  string `arg:"" name:"name" help:"Tool name"`
	Input string `arg:"" name:"input" optional:"" help:"JSON input payload"`
}

type PromptsCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCmd) Run(ctx *Globals) error {
	for _, t := range ctx.registry.Tools() {
		fmt.Printf("%s\n  %s\n", t.Name(), t.Description())
		if cmd.Schema {
			schema, err := t.Schema()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(schema, "  ", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("  %s\n", string(data))
		}
	}
	return nil
}

func (cmd *RunToolCmd) Run(ctx *Globals) error {
	var input json.RawMessage
	if cmd.Input != "" {
		input = json.RawMessage(cmd.Input)
	}

	result, err := ctx.registry.Run(ctx.ctx, cmd.Name, input)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func (cmd *PromptsCmd) Run(ctx *Globals) error {
	for _, prompt := range ctx.registry.Prompts() {
		fmt.Println(prompt)
	}
	return nil
}
