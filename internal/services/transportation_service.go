package services

import (
	"trip-router/internal/models/route_models"
	"trip-router/pkg/utils"
)

// Distance gates in km.
const (
	walkingMaxKm = 5
	cyclingMaxKm = 20
	busMaxKm     = 500
	trainMaxKm   = 1000
	flightMinKm  = 500
)

type Coordinates struct {
	Lat float64
	Lng float64
}

// TransportOption is one way to cover a leg. Costs are rough INR estimates.
type TransportOption struct {
	Mode        route_models.TransportMode
	Duration    string
	Cost        int
	EcoFriendly bool
}

// TransportationMenu carries the travel date through unchanged; it does not
// affect the options.
type TransportationMenu struct {
	DistanceKm float64
	Options    []TransportOption
	Date       string
}

type TransportationServiceInterface interface {
	Menu(origin, destination Coordinates, date string) TransportationMenu
}

type TransportationService struct{}

func NewTransportationService() TransportationServiceInterface {
	return &TransportationService{}
}

func (t *TransportationService) Menu(origin, destination Coordinates, date string) TransportationMenu {
	d := utils.GreatCircleKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	return TransportationMenu{
		DistanceKm: utils.RoundTo2(d),
		Options:    TransportOptionsForDistance(d),
		Date:       date,
	}
}

// TransportOptionsForDistance lists the modes whose distance gate admits d,
// in a fixed order: walking, cycling, bus, train, car, flight.
func TransportOptionsForDistance(d float64) []TransportOption {
	var options []TransportOption

	if d < walkingMaxKm {
		options = append(options, TransportOption{
			Mode:        route_models.ModeWalking,
			Duration:    utils.EstimateDuration(d, route_models.ModeWalking),
			Cost:        0,
			EcoFriendly: true,
		})
	}

	if d < cyclingMaxKm {
		// bike rental
		cost := 50
		if d > 10 {
			cost = 100
		}
		options = append(options, TransportOption{
			Mode:        route_models.ModeCycling,
			Duration:    utils.EstimateDuration(d, route_models.ModeCycling),
			Cost:        cost,
			EcoFriendly: true,
		})
	}

	if d < busMaxKm {
		options = append(options, TransportOption{
			Mode:        route_models.ModeBus,
			Duration:    utils.EstimateDuration(d, route_models.ModeBus),
			Cost:        int(d * 1.5),
			EcoFriendly: true,
		})
	}

	if d < trainMaxKm {
		options = append(options, TransportOption{
			Mode:        route_models.ModeTrain,
			Duration:    utils.EstimateDuration(d, route_models.ModeTrain),
			Cost:        int(d * 2),
			EcoFriendly: true,
		})
	}

	// fuel + tolls
	options = append(options, TransportOption{
		Mode:        route_models.ModeCar,
		Duration:    utils.EstimateDuration(d, route_models.ModeCar),
		Cost:        int(d * 8),
		EcoFriendly: false,
	})

	if d > flightMinKm {
		options = append(options, TransportOption{
			Mode:        route_models.ModeFlight,
			Duration:    utils.FlightDuration(d),
			Cost:        3000 + int(d*5),
			EcoFriendly: false,
		})
	}

	return options
}
