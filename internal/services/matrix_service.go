package services

import (
	"trip-router/internal/models/route_models"
	"trip-router/pkg/utils"
)

// DistanceMatrix holds great-circle distances in km between every pair of
// waypoints of one request, indexed by input position.
type DistanceMatrix [][]float64

// ComputeDistances evaluates each unordered pair once and mirrors it, so
// m[i][j] == m[j][i] holds exactly.
func ComputeDistances(points []route_models.Waypoint) DistanceMatrix {
	n := len(points)
	mat := make(DistanceMatrix, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := utils.Distance(points[i], points[j])
			mat[i][j] = d
			mat[j][i] = d
		}
	}

	return mat
}
