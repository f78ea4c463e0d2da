// Package share formats a location into shareable URLs and text. Everything
// here is pure string formatting; opening or copying a link is the caller's
// business.
package share

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// Platform identifiers, also used as export keys.
const (
	GoogleMaps    = "google_maps"
	AppleMaps     = "apple_maps"
	Waze          = "waze"
	BingMaps      = "bing_maps"
	OpenStreetMap = "openstreetmap"
	HereMaps      = "here_maps"

	WhatsApp = "whatsapp"
	Telegram = "telegram"
	Twitter  = "twitter"
	Facebook = "facebook"
	LinkedIn = "linkedin"

	Email    = "email"
	SMS      = "sms"
	DeepLink = "deep_link"

	QRCodeData   = "qr_code_data"
	CustomShare  = "custom_share"
	ShortText    = "short_text"
	DetailedText = "detailed_text"
)

// Group is a display bucket of platforms, in presentation order.
type Group struct {
	Title     string
	Platforms []string
}

// Groups drives how link lists are rendered and exported.
var Groups = []Group{
	{"Maps", []string{GoogleMaps, AppleMaps, Waze, BingMaps, OpenStreetMap, HereMaps}},
	{"Social", []string{WhatsApp, Telegram, Twitter, Facebook, LinkedIn}},
	{"Communication", []string{Email, SMS, DeepLink}},
	{"Custom", []string{QRCodeData, CustomShare, ShortText, DetailedText}},
}

// coord renders a coordinate in its shortest exact form, the way map URLs
// expect it: 40.7128 stays 40.7128 and -74.0060 becomes -74.006.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Build produces every known link for the given fix.
func Build(loc domain.LocationSample) map[string]string {
	lat, lon := coord(loc.Lat), coord(loc.Lon)
	desc := fmt.Sprintf("%s, %s", loc.Name, loc.Country)
	position := fmt.Sprintf("%.6f, %.6f", loc.Lat, loc.Lon)

	mapsURL := fmt.Sprintf("https://maps.google.com/?q=%s,%s", lat, lon)
	quotedMaps := url.QueryEscape(mapsURL)

	weather, traffic := "Unknown", "Unknown"
	var temperature float64
	if loc.Weather != nil {
		weather = loc.Weather.Condition
		temperature = loc.Weather.TemperatureC
	}
	if loc.Traffic != nil {
		traffic = loc.Traffic.Condition
	}

	links := map[string]string{
		GoogleMaps:    fmt.Sprintf("https://www.google.com/maps?q=%s,%s", lat, lon),
		AppleMaps:     fmt.Sprintf("https://maps.apple.com/?q=%s,%s", lat, lon),
		Waze:          fmt.Sprintf("https://waze.com/ul?ll=%s,%s&navigate=yes", lat, lon),
		BingMaps:      fmt.Sprintf("https://www.bing.com/maps?cp=%s~%s&lvl=15", lat, lon),
		OpenStreetMap: fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s&zoom=15", lat, lon),
		HereMaps:      fmt.Sprintf("https://wego.here.com/location?map=lat,%s,lon,%s", lat, lon),

		WhatsApp: fmt.Sprintf("https://wa.me/?text=📍 I'm at %s (%s)", desc, position),
		Telegram: fmt.Sprintf("https://t.me/share/url?url=%s&text=📍 I'm at %s", quotedMaps, desc),
		Twitter:  fmt.Sprintf("https://twitter.com/intent/tweet?text=📍 I'm at %s (%s)&url=%s", desc, position, quotedMaps),
		Facebook: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", quotedMaps),
		LinkedIn: fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", quotedMaps),

		Email:    fmt.Sprintf("mailto:?subject=📍 My Location&body=📍 I'm at %s (%s)%%0A%%0AView on Google Maps: %s", desc, position, mapsURL),
		SMS:      fmt.Sprintf("sms:?body=📍 I'm at %s (%s)", desc, position),
		DeepLink: fmt.Sprintf("geo:%s,%s?q=%s", lat, lon, url.QueryEscape(desc)),

		QRCodeData: mapsURL,
		CustomShare: fmt.Sprintf("📍 I'm at %s (%s)%%0A%%0A🌤️ Weather: %s | 🌡️ %.1f°C%%0A🚦 Traffic: %s | 🚗 %.1f km/h%%0A%%0A🗺️ View on Google Maps: %s",
			desc, position, weather, temperature, traffic, loc.SpeedKPH, mapsURL),
		ShortText: fmt.Sprintf("📍 %s (%s)", desc, position),
		DetailedText: fmt.Sprintf("📍 Location: %s%%0A🌤️ Weather: %s | 🌡️ %.1f°C%%0A🚦 Traffic: %s | 🚗 %.1f km/h%%0A🗺️ Maps: %s",
			desc, weather, temperature, traffic, loc.SpeedKPH, mapsURL),
	}

	return links
}
