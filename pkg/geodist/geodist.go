package geodist

import (
	"math"
	"strings"
)

const (
	earthRadiusKm = 6371

	// roadFactor inflates the great-circle distance to approximate driving distance.
	roadFactor = 1.3

	// MinKm is the lower bound for any resolved city pair.
	MinKm = 5

	// FallbackKm is returned when either address cannot be matched to a known city.
	FallbackKm = 25
)

type coords struct {
	lat float64
	lng float64
}

// EstimateKm estimates the driving distance between two free-form Swiss addresses.
// Both addresses are matched case-insensitively against the city table; if either
// fails to resolve, FallbackKm is returned. The result is rounded to whole km and
// clamped to MinKm. Pure and symmetric in its arguments.
func EstimateKm(addressFrom, addressTo string) float64 {
	from, okFrom := findCity(addressFrom)
	to, okTo := findCity(addressTo)

	if !okFrom || !okTo {
		return FallbackKm
	}

	driving := math.Round(haversineKm(from, to) * roadFactor)
	return math.Max(driving, MinKm)
}

// findCity returns the coordinates of the first city whose name occurs as a
// substring of the address. Table order decides ties.
func findCity(address string) (coords, bool) {
	lower := strings.ToLower(address)
	for _, c := range cities {
		if strings.Contains(lower, c.name) {
			return c.pos, true
		}
	}
	return coords{}, false
}

func haversineKm(a, b coords) float64 {
	dLat := (b.lat - a.lat) * (math.Pi / 180)
	dLng := (b.lng - a.lng) * (math.Pi / 180)
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat +
		math.Cos(a.lat*math.Pi/180)*math.Cos(b.lat*math.Pi/180)*sinLng*sinLng
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
