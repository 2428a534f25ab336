package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-router/internal/models/route_models"
)

func equatorPoint(name string, lng float64) route_models.Waypoint {
	return route_models.Waypoint{Name: name, Lat: 0, Lng: lng}
}

func names(route []route_models.Waypoint) []string {
	out := make([]string, len(route))
	for i, w := range route {
		out[i] = w.Name
	}
	return out
}

func TestNearestNeighborPlanner_GreedyOrder(t *testing.T) {
	planner := NewNearestNeighborPlanner()
	locations := []route_models.Waypoint{
		equatorPoint("A", 0),
		equatorPoint("B", 3),
		equatorPoint("C", 1),
		equatorPoint("D", 2),
	}

	route := planner.Plan(locations, false)

	assert.Equal(t, []string{"A", "C", "D", "B"}, names(route))
}

func TestNearestNeighborPlanner_TiesKeepInputOrder(t *testing.T) {
	planner := NewNearestNeighborPlanner()
	locations := []route_models.Waypoint{
		equatorPoint("origin", 0),
		equatorPoint("east", 1),
		equatorPoint("west", -1),
	}

	route := planner.Plan(locations, true)

	assert.Equal(t, []string{"origin", "east", "west"}, names(route))
}

func TestNearestNeighborPlanner_Deterministic(t *testing.T) {
	planner := NewNearestNeighborPlanner()
	locations := []route_models.Waypoint{
		{Name: "Delhi", Lat: 28.6139, Lng: 77.209},
		{Name: "Jaipur", Lat: 26.9124, Lng: 75.7873},
		{Name: "Agra", Lat: 27.1751, Lng: 78.0421},
		{Name: "Mumbai", Lat: 19.076, Lng: 72.8777},
		{Name: "Pune", Lat: 18.5204, Lng: 73.8567},
		{Name: "Goa", Lat: 15.2993, Lng: 74.124},
	}

	first := planner.Plan(locations, false)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, planner.Plan(locations, false))
	}
	assert.Equal(t, "Delhi", first[0].Name)
	assert.ElementsMatch(t, names(locations), names(first))
}

func TestNearestNeighborPlanner_PreserveStartFlagDoesNotChangeOrder(t *testing.T) {
	planner := NewNearestNeighborPlanner()
	locations := []route_models.Waypoint{
		equatorPoint("A", 5),
		equatorPoint("B", 0),
		equatorPoint("C", 6),
	}

	assert.Equal(t, planner.Plan(locations, false), planner.Plan(locations, true))
	assert.Equal(t, []string{"A", "C", "B"}, names(planner.Plan(locations, true)))
}

func TestNearestNeighborPlanner_SmallInputsUnchanged(t *testing.T) {
	planner := NewNearestNeighborPlanner()

	assert.Empty(t, planner.Plan(nil, false))

	single := []route_models.Waypoint{equatorPoint("only", 0)}
	assert.Equal(t, single, planner.Plan(single, true))
}

func TestNearestNeighborPlanner_DoesNotMutateInput(t *testing.T) {
	planner := NewNearestNeighborPlanner()
	locations := []route_models.Waypoint{
		equatorPoint("A", 0),
		equatorPoint("B", 3),
		equatorPoint("C", 1),
	}
	snapshot := append([]route_models.Waypoint(nil), locations...)

	_ = planner.Plan(locations, false)

	require.Equal(t, snapshot, locations)
}

func TestComputeDistances_Symmetric(t *testing.T) {
	points := []route_models.Waypoint{
		{Name: "Delhi", Lat: 28.6139, Lng: 77.209},
		{Name: "Agra", Lat: 27.1751, Lng: 78.0421},
		{Name: "Jaipur", Lat: 26.9124, Lng: 75.7873},
	}

	m := ComputeDistances(points)

	require.Len(t, m, 3)
	for i := range points {
		assert.Equal(t, 0.0, m[i][i])
		for j := range points {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}
	assert.Greater(t, m[0][2], m[0][1])
}
