package route_models

import "strings"

type TransportMode string

const (
	ModeCar     TransportMode = "car"
	ModeBus     TransportMode = "bus"
	ModeTrain   TransportMode = "train"
	ModeWalking TransportMode = "walking"
	ModeCycling TransportMode = "cycling"
	ModeFlight  TransportMode = "flight"

	// DefaultSpeedKmh applies to any mode without an entry in averageSpeeds.
	DefaultSpeedKmh = 50.0
)

// Average speeds in km/h.
var averageSpeeds = map[TransportMode]float64{
	ModeCar:     60,
	ModeBus:     40,
	ModeTrain:   80,
	ModeWalking: 5,
	ModeCycling: 15,
}

// Normalize lower-cases and trims the mode. Only the empty mode becomes car;
// a blank but non-empty mode stays unknown.
func (m TransportMode) Normalize() TransportMode {
	if m == "" {
		return ModeCar
	}
	return TransportMode(strings.ToLower(strings.TrimSpace(string(m))))
}

func (m TransportMode) AverageSpeedKmh() float64 {
	if speed, ok := averageSpeeds[m.Normalize()]; ok {
		return speed
	}
	return DefaultSpeedKmh
}

type Waypoint struct {
	Name string
	Lat  float64
	Lng  float64
}

// RouteSegment is one stop of an optimized route. The last segment has no
// next leg, so DistanceToNextKm and DurationToNext stay nil.
type RouteSegment struct {
	Waypoint         Waypoint
	Order            int
	DistanceToNextKm *float64
	DurationToNext   *string
}

// Strategy records which sequencing path produced a route.
type Strategy string

const (
	StrategyLocalHeuristic Strategy = "local_heuristic"
	StrategyOracleAssisted Strategy = "oracle_assisted"
	StrategyOracleFallback Strategy = "oracle_fallback"
)

type OptimizationRequest struct {
	Locations     []Waypoint
	Mode          TransportMode
	StartLocation *Waypoint
}

type OptimizationResult struct {
	Route           []RouteSegment
	TotalDistanceKm float64
	TotalDuration   string
	Mode            TransportMode
	Strategy        Strategy
	// FallbackReason is set only when Strategy is StrategyOracleFallback.
	FallbackReason string
}
