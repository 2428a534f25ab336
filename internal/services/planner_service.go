package services

import (
	"trip-router/internal/models/route_models"
)

type PlannerServiceInterface interface {
	Plan(locations []route_models.Waypoint, preserveStart bool) []route_models.Waypoint
}

// NearestNeighborPlanner builds a greedy tour: starting from the first
// waypoint it always moves to the closest unvisited one. Not optimal, but
// deterministic and cheap for the small inputs it is used for.
type NearestNeighborPlanner struct{}

func NewNearestNeighborPlanner() PlannerServiceInterface {
	return &NearestNeighborPlanner{}
}

// Plan returns a permutation of locations. The tour always starts at
// locations[0]; preserveStart is accepted for callers that want to state the
// intent explicitly. Ties go to the lower input index.
func (p *NearestNeighborPlanner) Plan(locations []route_models.Waypoint, preserveStart bool) []route_models.Waypoint {
	if len(locations) <= 1 {
		return locations
	}

	order := nearestNeighborOrder(ComputeDistances(locations), 0)

	route := make([]route_models.Waypoint, 0, len(locations))
	for _, idx := range order {
		route = append(route, locations[idx])
	}
	return route
}

func nearestNeighborOrder(dist DistanceMatrix, start int) []int {
	n := len(dist)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := start
	visited[current] = true
	order = append(order, current)

	for len(order) < n {
		nearest := -1
		minDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			if nearest == -1 || dist[current][i] < minDist {
				nearest = i
				minDist = dist[current][i]
			}
		}

		visited[nearest] = true
		order = append(order, nearest)
		current = nearest
	}

	return order
}
