package request_models

// Lat and Lng are pointers so an omitted coordinate is told apart from 0.
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type TransportationRequest struct {
	Origin      *CoordinatesRequest `json:"origin" binding:"required"`
	Destination *CoordinatesRequest `json:"destination" binding:"required"`
	Date        string              `json:"date"`
}
