package station

import "errors"

var (
	ErrStationEmpty    = errors.New("station_empty")
	ErrStationFull     = errors.New("station_full")
	ErrInvalidBikeKind = errors.New("invalid_bike_kind")
	ErrInvalidDuration = errors.New("invalid_duration")
	ErrInvalidCapacity = errors.New("invalid_capacity")
)
