package simulate

import (
	"math/rand"
	"time"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// City is one entry of the reference location table.
type City struct {
	Name       string
	Country    string
	Timezone   string
	Population string
	Lat        float64
	Lon        float64
}

// Cities is the fixed reference table fixes are drawn from.
var Cities = []City{
	{"New York", "USA", "EST", "8.4M", 40.7128, -74.0060},
	{"London", "UK", "GMT", "8.9M", 51.5074, -0.1278},
	{"Tokyo", "Japan", "JST", "13.9M", 35.6762, 139.6503},
	{"Paris", "France", "CET", "2.2M", 48.8566, 2.3522},
	{"Sydney", "Australia", "AEST", "5.3M", -33.8688, 151.2093},
	{"Moscow", "Russia", "MSK", "12.5M", 55.7558, 37.6176},
	{"Beijing", "China", "CST", "21.5M", 39.9042, 116.4074},
	{"Dubai", "UAE", "GST", "3.3M", 25.2048, 55.2708},
	{"Singapore", "Singapore", "SGT", "5.7M", 1.3521, 103.8198},
	{"Mumbai", "India", "IST", "20.4M", 19.0760, 72.8777},
	{"São Paulo", "Brazil", "BRT", "12.3M", -23.5505, -46.6333},
	{"Cairo", "Egypt", "EET", "9.5M", 30.0444, 31.2357},
	{"Seoul", "South Korea", "KST", "9.7M", 37.5665, 126.9780},
	{"Mexico City", "Mexico", "CST", "9.2M", 19.4326, -99.1332},
	{"Istanbul", "Turkey", "TRT", "15.5M", 41.0082, 28.9784},
}

var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Snowy", "Foggy", "Stormy", "Clear", "Partly Cloudy"}

var trafficConditions = []string{"Light", "Moderate", "Heavy", "Congested", "Clear", "Slow", "Standstill"}

var roadConditions = []string{"Good", "Fair", "Poor", "Excellent"}

var networkTypes = []string{"4G", "5G", "WiFi", "3G"}

// positionJitter bounds the per-fix lat/lon perturbation, in degrees.
const positionJitter = 0.001

// Features toggles the optional blocks attached to each fix.
type Features struct {
	Weather bool
	Traffic bool
	Device  bool
}

// LocationSimulator draws one fix per call from the city table.
type LocationSimulator struct {
	rnd      *rand.Rand
	now      func() time.Time
	features Features
}

// NewLocationSimulator builds a simulator with the given feature toggles. A
// nil random source gets a time-seeded one.
func NewLocationSimulator(rnd *rand.Rand, features Features) *LocationSimulator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LocationSimulator{rnd: rnd, now: time.Now, features: features}
}

// Sample picks a city uniformly, jitters the coordinates slightly for
// realistic movement, and draws the auxiliary fields from their fixed
// ranges.
func (l *LocationSimulator) Sample() domain.LocationSample {
	city := Cities[l.rnd.Intn(len(Cities))]

	fix := domain.LocationSample{
		Name:       city.Name,
		Country:    city.Country,
		Timezone:   city.Timezone,
		Population: city.Population,
		Lat:        city.Lat + l.jitter(),
		Lon:        city.Lon + l.jitter(),
		Timestamp:  l.now(),
		AccuracyM:  3 + l.rnd.Float64()*12,
		SpeedKPH:   l.rnd.Float64() * 80,
		HeadingDeg: l.rnd.Float64() * 360,
		AltitudeM:  l.rnd.Float64() * 2000,
	}

	if l.features.Weather {
		fix.Weather = &domain.WeatherInfo{
			Condition:    weatherConditions[l.rnd.Intn(len(weatherConditions))],
			TemperatureC: -10 + l.rnd.Float64()*50,
			Humidity:     30 + l.rnd.Float64()*60,
			WindKPH:      l.rnd.Float64() * 30,
			VisibilityKM: 5 + l.rnd.Float64()*15,
			UVIndex:      l.rnd.Intn(11),
		}
	}
	if l.features.Traffic {
		fix.Traffic = &domain.TrafficInfo{
			Condition:       trafficConditions[l.rnd.Intn(len(trafficConditions))],
			DelayMinutes:    l.rnd.Intn(46),
			AvgSpeedKPH:     10 + l.rnd.Float64()*70,
			CongestionLevel: 1 + l.rnd.Intn(10),
			Incidents:       l.rnd.Intn(4),
			RoadCondition:   roadConditions[l.rnd.Intn(len(roadConditions))],
		}
	}
	if l.features.Device {
		fix.Device = &domain.DeviceInfo{
			BatteryPct: 20 + l.rnd.Float64()*80,
			SignalBars: 1 + l.rnd.Intn(5),
			Network:    networkTypes[l.rnd.Intn(len(networkTypes))],
		}
	}

	return fix
}

func (l *LocationSimulator) jitter() float64 {
	return -positionJitter + l.rnd.Float64()*2*positionJitter
}

var _ ports.LocationSampler = (*LocationSimulator)(nil)
