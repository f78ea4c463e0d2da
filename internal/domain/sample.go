package domain

import "time"

// SignalSample is one detected carrier band reading. Samples are immutable
// once created and keep the timestamp they were born with.
type SignalSample struct {
	Band         string    `json:"band"`
	FrequencyMHz float64   `json:"frequency_mhz"`
	Strength     float64   `json:"strength"`
	Quality      float64   `json:"quality"`
	Timestamp    time.Time `json:"ts"`
}

// WeatherInfo carries the simulated weather fields attached to a location.
type WeatherInfo struct {
	Condition    string  `json:"condition"`
	TemperatureC float64 `json:"temperature_c"`
	Humidity     float64 `json:"humidity"`
	WindKPH      float64 `json:"wind_kph"`
	VisibilityKM float64 `json:"visibility_km"`
	UVIndex      int     `json:"uv_index"`
}

// TrafficInfo carries the simulated road conditions around a location.
type TrafficInfo struct {
	Condition       string  `json:"condition"`
	DelayMinutes    int     `json:"delay_minutes"`
	AvgSpeedKPH     float64 `json:"avg_speed_kph"`
	CongestionLevel int     `json:"congestion_level"`
	Incidents       int     `json:"incidents"`
	RoadCondition   string  `json:"road_condition"`
}

// DeviceInfo carries simulated device telemetry.
type DeviceInfo struct {
	BatteryPct float64 `json:"battery_pct"`
	SignalBars int     `json:"signal_bars"`
	Network    string  `json:"network"`
}

// LocationSample is one simulated GPS fix. Weather, Traffic and Device are
// optional and nil when the corresponding feature is disabled.
type LocationSample struct {
	Name       string    `json:"name"`
	Country    string    `json:"country"`
	Timezone   string    `json:"timezone,omitempty"`
	Population string    `json:"population,omitempty"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Timestamp  time.Time `json:"ts"`
	AccuracyM  float64   `json:"accuracy_m"`
	SpeedKPH   float64   `json:"speed_kph"`
	HeadingDeg float64   `json:"heading_deg"`
	AltitudeM  float64   `json:"altitude_m"`

	Weather *WeatherInfo `json:"weather,omitempty"`
	Traffic *TrafficInfo `json:"traffic,omitempty"`
	Device  *DeviceInfo  `json:"device,omitempty"`
}

// RouteInfo is a rough trip estimate between two locations.
type RouteInfo struct {
	DistanceKM  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	AvgSpeedKPH float64 `json:"avg_speed_kph"`
	FuelL       float64 `json:"fuel_l"`
	CO2KG       float64 `json:"co2_kg"`
	Tolls       int     `json:"tolls"`
	RestStops   int     `json:"rest_stops"`
}

// Method names a countermeasure action.
type Method string

const (
	MethodSpoofing   Method = "location_spoofing"
	MethodJamming    Method = "signal_jamming"
	MethodHopping    Method = "frequency_hopping"
	MethodEncryption Method = "encryption"
)

// CountermeasureRecord is the outcome of one applied action. Records are
// ephemeral and not retained beyond the tick that produced them.
type CountermeasureRecord struct {
	Method        Method    `json:"method"`
	Effectiveness float64   `json:"effectiveness"`
	Success       bool      `json:"success"`
	Detail        string    `json:"detail,omitempty"`
	Timestamp     time.Time `json:"ts"`
}
