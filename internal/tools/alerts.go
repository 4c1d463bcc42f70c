package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/miyamo2/qilin"

	"github.com/mwiater/nimbus/internal/nws"
)

// AlertsRequest contains input parameters for the get-alerts tool.
type AlertsRequest struct {
	State string `json:"state" jsonschema:"minLength=2,maxLength=2,description=Two-letter US state code (e.g. CA or NY)"`
}

// Alerts returns the get-alerts handler. Every outcome, including lookup
// failure, is reported as a single text block; the protocol-level call
// itself always succeeds.
func Alerts(client *nws.Client) qilin.ToolHandlerFunc {
	return func(c qilin.ToolContext) error {
		var req AlertsRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		return c.String(alertsText(c.Context(), client, req.State))
	}
}

// alertsText runs the alerts lookup and shapes the response text.
func alertsText(ctx context.Context, client *nws.Client, state string) string {
	code := strings.ToUpper(state)

	data := nws.Fetch[nws.AlertsResponse](ctx, client, client.AlertsURL(code))
	if data == nil {
		return "Failed to retrieve alerts data"
	}

	features := data.Features
	if len(features) == 0 {
		return fmt.Sprintf("No active alerts for %s", code)
	}

	blocks := make([]string, 0, len(features))
	for _, f := range features {
		blocks = append(blocks, formatAlert(f.Properties))
	}
	return fmt.Sprintf("Active alerts for %s:\n\n%s", code, strings.Join(blocks, "\n"))
}

// formatAlert renders one alert as a fixed six-line block, substituting
// placeholders for absent fields.
func formatAlert(p nws.AlertProperties) string {
	return strings.Join([]string{
		fmt.Sprintf("Event: %s", strOr(p.Event, "Unknown")),
		fmt.Sprintf("Area: %s", strOr(p.AreaDesc, "Unknown")),
		fmt.Sprintf("Severity: %s", strOr(p.Severity, "Unknown")),
		fmt.Sprintf("Status: %s", strOr(p.Status, "Unknown")),
		fmt.Sprintf("Headline: %s", strOr(p.Headline, "No headline")),
		"---",
	}, "\n")
}
