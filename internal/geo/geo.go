// Package geo holds the great-circle math shared by the history buffer and
// the route estimator.
package geo

import (
	"math"
	"math/rand"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

// EarthRadiusKM is the sphere radius used for all distance math.
const EarthRadiusKM = 6371

// Haversine returns the great-circle distance in kilometres between two
// latitude/longitude points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKM * c
}

// EstimateRoute builds a rough trip estimate between two fixes. The average
// speed is drawn from the same band the simulator uses, so the numbers stay
// plausible rather than accurate.
func EstimateRoute(from, to domain.LocationSample, rnd *rand.Rand) domain.RouteInfo {
	distance := Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
	avgSpeed := 30 + rnd.Float64()*50
	durationMin := distance / avgSpeed * 60

	return domain.RouteInfo{
		DistanceKM:  distance,
		DurationMin: durationMin,
		AvgSpeedKPH: avgSpeed,
		FuelL:       distance * 0.08,
		CO2KG:       distance * 0.2,
		Tolls:       rnd.Intn(4),
		RestStops:   rnd.Intn(3),
	}
}
