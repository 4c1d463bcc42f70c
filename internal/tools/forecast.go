package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/miyamo2/qilin"

	"github.com/mwiater/nimbus/internal/nws"
)

// ForecastRequest contains input parameters for the get-forecast tool.
type ForecastRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"minimum=-90,maximum=90,description=Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"minimum=-180,maximum=180,description=Longitude of the location"`
}

// Forecast returns the get-forecast handler.
func Forecast(client *nws.Client) qilin.ToolHandlerFunc {
	return func(c qilin.ToolContext) error {
		var req ForecastRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		return c.String(forecastText(c.Context(), client, req.Latitude, req.Longitude))
	}
}

// forecastText resolves a coordinate to its grid point, fetches that grid
// point's forecast document, and shapes the response text. The two-step
// lookup is imposed by the NWS addressing scheme: arbitrary coordinates
// must be resolved to a discrete grid cell before a forecast exists.
func forecastText(ctx context.Context, client *nws.Client, lat, lon float64) string {
	points := nws.Fetch[nws.PointsResponse](ctx, client, client.PointsURL(lat, lon))
	if points == nil {
		return fmt.Sprintf(
			"Failed to retrieve grid point data for coordinates: %s, %s. This location may not be supported by the NWS API (only US locations are supported).",
			formatCoord(lat), formatCoord(lon))
	}

	forecastURL := points.Properties.Forecast
	if forecastURL == nil || *forecastURL == "" {
		return "Failed to get forecast URL from grid point data"
	}

	forecast := nws.Fetch[nws.ForecastResponse](ctx, client, *forecastURL)
	if forecast == nil {
		return "Failed to retrieve forecast data"
	}

	periods := forecast.Properties.Periods
	if len(periods) == 0 {
		return "No forecast periods available"
	}

	blocks := make([]string, 0, len(periods))
	for _, p := range periods {
		blocks = append(blocks, formatPeriod(p))
	}
	return fmt.Sprintf("Forecast for %s, %s:\n\n%s", formatCoord(lat), formatCoord(lon), strings.Join(blocks, "\n"))
}

// formatPeriod renders one forecast period as a fixed five-line block,
// substituting placeholders for absent fields.
func formatPeriod(p nws.ForecastPeriod) string {
	temperature := "Unknown"
	if p.Temperature != nil {
		temperature = strconv.FormatFloat(*p.Temperature, 'f', -1, 64)
	}
	return strings.Join([]string{
		fmt.Sprintf("%s:", strOr(p.Name, "Unknown")),
		fmt.Sprintf("Temperature: %s°%s", temperature, strOr(p.TemperatureUnit, "F")),
		fmt.Sprintf("Wind: %s %s", strOr(p.WindSpeed, "Unknown"), strOr(p.WindDirection, "")),
		strOr(p.ShortForecast, "No forecast available"),
		"---",
	}, "\n")
}

// formatCoord echoes a raw input coordinate without imposing precision.
// Only the points URL uses the fixed four-decimal form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
