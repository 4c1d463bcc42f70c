package nws

// Response shapes for the three NWS payloads this server consumes. Every
// field is optional on the wire, so properties are pointers and consumers
// substitute defaults for absent values.

// AlertsResponse is the payload of /alerts?area=<STATE>.
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is one alert in the feature collection.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties carries the alert fields rendered for the client.
type AlertProperties struct {
	Event    *string `json:"event"`
	AreaDesc *string `json:"areaDesc"`
	Severity *string `json:"severity"`
	Status   *string `json:"status"`
	Headline *string `json:"headline"`
}

// PointsResponse is the payload of /points/<lat>,<lon>. The forecast URL
// it carries locates the forecast document for the resolved grid cell.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

// PointsProperties holds the forecast-resource locator.
type PointsProperties struct {
	Forecast *string `json:"forecast"`
}

// ForecastResponse is the payload of the forecast URL returned by the
// points endpoint.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

// ForecastProperties holds the ordered forecast periods.
type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastPeriod is a single named span of the forecast (e.g. "Tonight").
type ForecastPeriod struct {
	Name            *string  `json:"name"`
	Temperature     *float64 `json:"temperature"`
	TemperatureUnit *string  `json:"temperatureUnit"`
	WindSpeed       *string  `json:"windSpeed"`
	WindDirection   *string  `json:"windDirection"`
	ShortForecast   *string  `json:"shortForecast"`
}
