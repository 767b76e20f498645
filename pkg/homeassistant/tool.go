package homeassistant

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	llmtools "github.com/jxlarrea/voice-satellite-card-llm-tools"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL TYPES

type getStates struct{ client *Client }
type getState struct{ client *Client }
type callService struct{ client *Client }
type getServices struct{ client *Client }

var _ tool.Tool = (*getStates)(nil)
var _ tool.Tool = (*getState)(nil)
var _ tool.Tool = (*callService)(nil)
var _ tool.Tool = (*getServices)(nil)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// GetStatesRequest filters the list of entity states.
type GetStatesRequest struct {
	Domain string `json:"domain,omitempty" jsonschema:"Filter entities by domain (e.g. light, switch, sensor, climate). Returns all entities when empty."`
}

// GetStateRequest returns a single entity's state.
type GetStateRequest struct {
	EntityId string `json:"entity_id" jsonschema:"The entity ID to query (e.g. light.living_room)."`
}

// CallServiceRequest calls a Home Assistant service.
type CallServiceRequest struct {
	Domain  string         `json:"domain" jsonschema:"The service domain (e.g. light, switch, climate, media_player)."`
	Service string         `json:"service" jsonschema:"The service to call (e.g. turn_on, turn_off, toggle, set_temperature)."`
	Data    map[string]any `json:"data,omitempty" jsonschema:"Service data including entity_id and any service-specific fields."`
}

// GetServicesRequest lists available services for a domain.
type GetServicesRequest struct {
	Domain string `json:"domain" jsonschema:"The domain to list services for (e.g. light, switch, climate)."`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the generic Home Assistant tools for a client, for
// hosts which expose direct entity access alongside the search tools.
func NewTools(client *Client) []tool.Tool {
	return []tool.Tool{
		&getStates{client: client},
		&getState{client: client},
		&callService{client: client},
		&getServices{client: client},
	}
}

///////////////////////////////////////////////////////////////////////////////
// ha_get_states

func (*getStates) Name() string { return "ha_get_states" }

func (*getStates) Description() string {
	return "List all Home Assistant entities and their current state. " +
		"Optionally filter by domain (e.g. light, switch, sensor, climate, media_player). " +
		"Returns entity ID, state value, friendly name, and key attributes."
}

func (*getStates) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetStatesRequest](nil)
}

func (t *getStates) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetStatesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, llmtools.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	states, err := t.client.States(ctx)
	if err != nil {
		return nil, err
	}

	// Filter by domain if requested
	if req.Domain != "" {
		filtered := make([]*State, 0, len(states))
		for _, s := range states {
			if s.Domain() == req.Domain {
				filtered = append(filtered, s)
			}
		}
		states = filtered
	}

	// Return a compact summary for the LLM
	type stateSummary struct {
		EntityId string `json:"entity_id"`
		State    string `json:"state"`
		Name     string `json:"name"`
		Unit     string `json:"unit,omitempty"`
	}
	result := make([]stateSummary, 0, len(states))
	for _, s := range states {
		if s.Value() == "" {
			continue // skip unavailable entities
		}
		result = append(result, stateSummary{
			EntityId: s.Entity,
			State:    s.Value(),
			Name:     s.Name(),
			Unit:     s.UnitOfMeasurement(),
		})
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// ha_get_state

func (*getState) Name() string { return "ha_get_state" }

func (*getState) Description() string {
	return "Get the full state of a specific Home Assistant entity by its entity ID. " +
		"Returns the state value, all attributes, and timestamps."
}

func (*getState) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetStateRequest](nil)
}

func (t *getState) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetStateRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, llmtools.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.EntityId == "" {
		return nil, llmtools.ErrBadParameter.With("entity_id is required")
	}

	return t.client.State(ctx, req.EntityId)
}

///////////////////////////////////////////////////////////////////////////////
// ha_call_service

func (*callService) Name() string { return "ha_call_service" }

func (*callService) Description() string {
	return "Call a Home Assistant service to control a device. " +
		"Common examples: domain='light' service='turn_on' data={'entity_id':'light.living_room','brightness':255}, " +
		"domain='switch' service='toggle' data={'entity_id':'switch.fan'}. " +
		"Returns the list of states that changed."
}

func (*callService) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CallServiceRequest](nil)
}

func (t *callService) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CallServiceRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, llmtools.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.Domain == "" {
		return nil, llmtools.ErrBadParameter.With("domain is required")
	}
	if req.Service == "" {
		return nil, llmtools.ErrBadParameter.With("service is required")
	}

	return t.client.Call(ctx, req.Domain, req.Service, req.Data)
}

///////////////////////////////////////////////////////////////////////////////
// ha_get_services

func (*getServices) Name() string { return "ha_get_services" }

func (*getServices) Description() string {
	return "List available services for a Home Assistant domain. " +
		"Returns service names and descriptions so you know what actions can be performed. " +
		"Use this before calling ha_call_service if you are unsure which services are available."
}

func (*getServices) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetServicesRequest](nil)
}

func (t *getServices) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetServicesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, llmtools.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.Domain == "" {
		return nil, llmtools.ErrBadParameter.With("domain is required")
	}

	services, err := t.client.Services(ctx, req.Domain)
	if err != nil {
		return nil, err
	}

	// Return a compact view with name, call ID, and description
	type serviceSummary struct {
		Call        string   `json:"call"`
		Name        string   `json:"name,omitempty"`
		Description string   `json:"description,omitempty"`
		Fields      []string `json:"fields,omitempty"`
	}
	result := make([]serviceSummary, 0, len(services))
	for _, s := range services {
		summary := serviceSummary{
			Call:        s.Call,
			Name:        s.Name,
			Description: s.Description,
		}
		for fieldName := range s.Fields {
			summary.Fields = append(summary.Fields, fieldName)
		}
		result = append(result, summary)
	}
	return result, nil
}
