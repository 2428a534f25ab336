package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trip-router/internal/models/route_models"
	"trip-router/pkg/utils"
)

// LocalHeuristicLimit is the largest waypoint count planned locally without
// consulting the oracle.
const LocalHeuristicLimit = 10

type RouteServiceInterface interface {
	Optimize(ctx context.Context, req route_models.OptimizationRequest) (*route_models.OptimizationResult, error)
}

type RouteService struct {
	planner PlannerServiceInterface
	advisor OrderAdvisor
	log     *zap.Logger
}

func NewRouteService(planner PlannerServiceInterface, advisor OrderAdvisor, log *zap.Logger) RouteServiceInterface {
	return &RouteService{
		planner: planner,
		advisor: advisor,
		log:     log,
	}
}

// Optimize orders the requested waypoints and enriches every leg with
// distance and duration. The only error it returns is
// utils.ErrNotEnoughLocations; oracle problems degrade to the local heuristic.
func (r *RouteService) Optimize(ctx context.Context, req route_models.OptimizationRequest) (*route_models.OptimizationResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = route_models.ModeCar
	}

	locations, hasStart := withStartLocation(req.Locations, req.StartLocation)
	if len(locations) < 2 {
		return nil, utils.ErrNotEnoughLocations
	}

	var (
		ordered  []route_models.Waypoint
		strategy route_models.Strategy
		reason   string
	)

	if len(locations) <= LocalHeuristicLimit {
		ordered = r.planner.Plan(locations, hasStart)
		strategy = route_models.StrategyLocalHeuristic
	} else {
		ordered, strategy, reason = r.oracleOrder(ctx, locations, mode, hasStart)
	}

	result := assembleRoute(ordered, mode)
	result.Strategy = strategy
	result.FallbackReason = reason

	r.log.Info("route optimized",
		zap.Int("waypoints", len(locations)),
		zap.String("mode", string(mode)),
		zap.String("strategy", string(strategy)),
		zap.Float64("total_distance_km", result.TotalDistanceKm))

	return result, nil
}

// oracleOrder asks the advisor for an order and falls back to the planner on
// the full set when the call fails or the answer covers too few waypoints.
func (r *RouteService) oracleOrder(
	ctx context.Context,
	locations []route_models.Waypoint,
	mode route_models.TransportMode,
	hasStart bool,
) ([]route_models.Waypoint, route_models.Strategy, string) {
	fallback := func(err error) ([]route_models.Waypoint, route_models.Strategy, string) {
		r.log.Warn("route oracle fallback", zap.Int("waypoints", len(locations)), zap.Error(err))
		return r.planner.Plan(locations, hasStart), route_models.StrategyOracleFallback, err.Error()
	}

	raw, err := r.advisor.Advise(ctx, locations, mode)
	if err != nil {
		return fallback(err)
	}

	parsed := ParseOrderResponse(raw, len(locations))
	for _, d := range parsed.Diagnostics {
		r.log.Debug("oracle line skipped", zap.Int("line", d.Line), zap.String("text", d.Text), zap.String("reason", d.Reason))
	}
	if !parsed.Accepted(len(locations)) {
		return fallback(fmt.Errorf("%w: recognised %d of %d waypoints",
			utils.ErrOracleAnswerRejected, len(parsed.Indices), len(locations)))
	}

	order := completeOrder(parsed.Indices, len(locations))
	if hasStart {
		order = moveToFront(order, 0)
	}

	ordered := make([]route_models.Waypoint, 0, len(order))
	for _, idx := range order {
		ordered = append(ordered, locations[idx])
	}
	return ordered, route_models.StrategyOracleAssisted, ""
}

// withStartLocation prepends start unless a location already carries its name.
func withStartLocation(locations []route_models.Waypoint, start *route_models.Waypoint) ([]route_models.Waypoint, bool) {
	if start == nil {
		return locations, false
	}
	for _, loc := range locations {
		if loc.Name == start.Name {
			return locations, false
		}
	}

	out := make([]route_models.Waypoint, 0, len(locations)+1)
	out = append(out, *start)
	return append(out, locations...), true
}

// completeOrder appends, in input order, every index the oracle never mentioned.
func completeOrder(indices []int, count int) []int {
	seen := make([]bool, count)
	order := make([]int, 0, count)
	for _, idx := range indices {
		seen[idx] = true
		order = append(order, idx)
	}
	for i := 0; i < count; i++ {
		if !seen[i] {
			order = append(order, i)
		}
	}
	return order
}

func moveToFront(order []int, idx int) []int {
	out := make([]int, 0, len(order))
	out = append(out, idx)
	for _, v := range order {
		if v != idx {
			out = append(out, v)
		}
	}
	return out
}

func assembleRoute(ordered []route_models.Waypoint, mode route_models.TransportMode) *route_models.OptimizationResult {
	segments := make([]route_models.RouteSegment, len(ordered))
	total := 0.0

	for i, loc := range ordered {
		segments[i] = route_models.RouteSegment{Waypoint: loc, Order: i}
		if i == len(ordered)-1 {
			continue
		}

		d := utils.Distance(loc, ordered[i+1])
		total += d

		rounded := utils.RoundTo2(d)
		duration := utils.EstimateDuration(d, mode)
		segments[i].DistanceToNextKm = &rounded
		segments[i].DurationToNext = &duration
	}

	return &route_models.OptimizationResult{
		Route:           segments,
		TotalDistanceKm: utils.RoundTo2(total),
		TotalDuration:   utils.EstimateDuration(total, mode),
		Mode:            mode,
	}
}
