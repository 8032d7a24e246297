package station

// Service owns the station state. It is not safe for concurrent use.
type Service struct {
	station Station
}

// NewService returns a service for a full station of the given capacity.
func NewService(capacity int) (*Service, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Service{
		station: Station{Capacity: capacity, AvailableBikes: capacity},
	}, nil
}

func (s *Service) Borrow() error {
	if s.station.AvailableBikes <= 0 {
		return ErrStationEmpty
	}
	s.station.AvailableBikes--
	return nil
}

func (s *Service) ReturnBike() error {
	if s.station.AvailableBikes >= s.station.Capacity {
		return ErrStationFull
	}
	s.station.AvailableBikes++
	return nil
}

// EstimateCost prices a rental of durationMinutes on a bike of the given kind.
// The bike kind is checked before the duration.
func (s *Service) EstimateCost(durationMinutes int, kind BikeKind) (RentalQuote, error) {
	rate, ok := kind.HourlyRate()
	if !ok {
		return RentalQuote{}, ErrInvalidBikeKind
	}
	if durationMinutes < 0 {
		return RentalQuote{}, ErrInvalidDuration
	}

	hours := float64(durationMinutes) / 60.0
	return RentalQuote{
		Kind:            kind,
		DurationMinutes: durationMinutes,
		Hours:           hours,
		Amount:          rate * hours,
	}, nil
}

func (s *Service) Status() Status {
	return Status{
		AvailableBikes: s.station.AvailableBikes,
		FreeSlots:      s.station.FreeSlots(),
	}
}

func (s *Service) Capacity() int {
	return s.station.Capacity
}
