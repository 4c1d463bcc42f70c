// Package tools defines the MCP tools this server exposes: their names,
// descriptions, input schemas, and handlers.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/miyamo2/qilin"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mwiater/nimbus/internal/nws"
)

const (
	// AlertsName is the canonical name for the state-alerts tool.
	AlertsName = "get-alerts"
	// ForecastName is the canonical name for the coordinate-forecast tool.
	ForecastName = "get-forecast"

	alertsDescription   = "Get weather alerts for a state"
	forecastDescription = "Get weather forecast for a location"
)

// Definition binds a tool name and description to its request schema and handler.
type Definition struct {
	Name        string
	Description string
	Request     any
	Handler     func(*nws.Client) qilin.ToolHandlerFunc
}

// Definitions returns the full tool table. It is built once at startup and
// never mutated afterwards.
func Definitions() []Definition {
	return []Definition{
		{Name: AlertsName, Description: alertsDescription, Request: (*AlertsRequest)(nil), Handler: Alerts},
		{Name: ForecastName, Description: forecastDescription, Request: (*ForecastRequest)(nil), Handler: Forecast},
	}
}

// Register binds every tool definition to the server, wrapping each handler
// with argument validation against its declared schema.
func Register(q *qilin.Qilin, client *nws.Client) error {
	for _, def := range Definitions() {
		mw, err := validateArguments(def.Request)
		if err != nil {
			return fmt.Errorf("register %s: %w", def.Name, err)
		}
		q.Tool(def.Name, def.Request, def.Handler(client),
			qilin.ToolWithDescription(def.Description),
			qilin.ToolWithMiddleware(mw))
	}
	return nil
}

// SchemaJSON returns the JSON input schema a definition publishes.
func SchemaJSON(def Definition) ([]byte, error) {
	return reflectSchema(def.Request)
}

// reflectSchema reflects the request type into the same schema the transport
// advertises in tools/list, so validation and the published schema cannot drift.
func reflectSchema(req any) ([]byte, error) {
	ref := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	schema := ref.Reflect(req)
	schema.Version = ""
	return json.Marshal(schema)
}

// validateArguments builds a middleware that checks raw call arguments
// against the reflected schema before the handler runs. Handlers therefore
// never see malformed input.
func validateArguments(req any) (qilin.ToolMiddlewareFunc, error) {
	raw, err := reflectSchema(req)
	if err != nil {
		return nil, fmt.Errorf("reflect schema: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return func(next qilin.ToolHandlerFunc) qilin.ToolHandlerFunc {
		return func(c qilin.ToolContext) error {
			args := c.Arguments()
			if len(args) == 0 {
				args = json.RawMessage("{}")
			}
			result, err := schema.Validate(gojsonschema.NewBytesLoader(args))
			if err != nil {
				return fmt.Errorf("validate arguments for %s: %w", c.ToolName(), err)
			}
			if !result.Valid() {
				details := make([]string, 0, len(result.Errors()))
				for _, e := range result.Errors() {
					details = append(details, e.String())
				}
				return fmt.Errorf("invalid arguments for %s: %s", c.ToolName(), strings.Join(details, "; "))
			}
			return next(c)
		}
	}, nil
}

// strOr substitutes def when a provider field is absent or empty.
func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
