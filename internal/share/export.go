package share

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatTXT:
		return Format(s), nil
	}
	return FormatJSON, fmt.Errorf("unknown export format %q (use json, csv or txt)", s)
}

type jsonExport struct {
	Timestamp time.Time             `json:"timestamp"`
	Location  domain.LocationSample `json:"location"`
	Links     map[string]string     `json:"links"`
}

// Export renders the location and its links in the requested format.
func Export(loc domain.LocationSample, links map[string]string, format Format) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(jsonExport{
			Timestamp: time.Now(),
			Location:  loc,
			Links:     links,
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal export: %w", err)
		}
		return string(out), nil

	case FormatCSV:
		var b strings.Builder
		b.WriteString("Platform,URL\n")
		for _, group := range Groups {
			for _, platform := range group.Platforms {
				if link, ok := links[platform]; ok {
					b.WriteString(platform)
					b.WriteString(",")
					b.WriteString(link)
					b.WriteString("\n")
				}
			}
		}
		return b.String(), nil

	case FormatTXT:
		var b strings.Builder
		fmt.Fprintf(&b, "Location: %s, %s\n", loc.Name, loc.Country)
		fmt.Fprintf(&b, "Coordinates: %.6f, %.6f\n", loc.Lat, loc.Lon)
		if loc.Weather != nil {
			fmt.Fprintf(&b, "Weather: %s\n", loc.Weather.Condition)
			fmt.Fprintf(&b, "Temperature: %.1f°C\n", loc.Weather.TemperatureC)
		}
		b.WriteString("\nShareable Links:\n")
		for _, group := range Groups {
			for _, platform := range group.Platforms {
				if link, ok := links[platform]; ok {
					fmt.Fprintf(&b, "%s: %s\n", platform, link)
				}
			}
		}
		return b.String(), nil
	}

	return "", fmt.Errorf("unknown export format %q", format)
}
