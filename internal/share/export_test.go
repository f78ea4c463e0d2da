package share

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "csv", "txt"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestExportJSON(t *testing.T) {
	fix := newYorkFix()
	links := Build(fix)

	out, err := Export(fix, links, FormatJSON)
	require.NoError(t, err)

	var parsed struct {
		Location domain.LocationSample `json:"location"`
		Links    map[string]string     `json:"links"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "New York", parsed.Location.Name)
	assert.Len(t, parsed.Links, len(links))
}

func TestExportCSV(t *testing.T) {
	fix := newYorkFix()
	links := Build(fix)

	out, err := Export(fix, links, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Platform,URL", lines[0])

	var total int
	for _, group := range Groups {
		total += len(group.Platforms)
	}
	assert.Len(t, lines, total+1)

	// Rows follow the display grouping, maps first.
	assert.True(t, strings.HasPrefix(lines[1], GoogleMaps+","))
}

func TestExportTXT(t *testing.T) {
	fix := newYorkFix()
	fix.Weather = &domain.WeatherInfo{Condition: "Cloudy", TemperatureC: 12.0}
	links := Build(fix)

	out, err := Export(fix, links, FormatTXT)
	require.NoError(t, err)

	assert.Contains(t, out, "Location: New York, USA")
	assert.Contains(t, out, "Coordinates: 40.712800, -74.006000")
	assert.Contains(t, out, "Weather: Cloudy")
	assert.Contains(t, out, "Shareable Links:")
	assert.Contains(t, out, GoogleMaps+": https://")
}
