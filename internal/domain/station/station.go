package station

import "fmt"

const (
	DefaultCapacity = 20

	MechanicalHourlyRate = 4.0
	ElectricHourlyRate   = 5.0
)

// BikeKind values match the menu selectors used to pick a bike type.
type BikeKind int

const (
	Mechanical BikeKind = 1
	Electric   BikeKind = 2
)

func (k BikeKind) String() string {
	switch k {
	case Mechanical:
		return "mechanical"
	case Electric:
		return "electric"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// HourlyRate returns the rental price per hour for the kind.
func (k BikeKind) HourlyRate() (float64, bool) {
	switch k {
	case Mechanical:
		return MechanicalHourlyRate, true
	case Electric:
		return ElectricHourlyRate, true
	default:
		return 0, false
	}
}

// Station is the single dock. AvailableBikes stays within [0, Capacity].
type Station struct {
	Capacity       int
	AvailableBikes int
}

func (s Station) FreeSlots() int {
	return s.Capacity - s.AvailableBikes
}

func (s Station) String() string {
	return fmt.Sprintf("station (%d/%d)", s.AvailableBikes, s.Capacity)
}

// Status is a read-only snapshot used for the menu banner.
type Status struct {
	AvailableBikes int
	FreeSlots      int
}

// RentalQuote is computed per request and never stored.
type RentalQuote struct {
	Kind            BikeKind
	DurationMinutes int
	Hours           float64
	Amount          float64
}
