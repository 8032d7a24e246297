package journal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CommandBorrow   = "BORROW"
	CommandReturn   = "RETURN"
	CommandEstimate = "ESTIMATE"
	CommandQuit     = "QUIT"
	CommandUnknown  = "UNKNOWN"
)

const (
	OutcomeBorrowed        = "borrowed"
	OutcomeReturned        = "returned"
	OutcomeQuoted          = "quoted"
	OutcomeStationEmpty    = "station_empty"
	OutcomeStationFull     = "station_full"
	OutcomeInvalidBikeKind = "invalid_bike_kind"
	OutcomeInvalidDuration = "invalid_duration"
	OutcomeInvalidChoice   = "invalid_choice"
	OutcomeQuit            = "quit"
)

// Entry is one menu outcome of the current session.
type Entry struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Seq            int       `json:"seq" gorm:"not null;uniqueIndex"`
	Command        string    `json:"command" gorm:"type:varchar(16);not null;index"`
	Outcome        string    `json:"outcome" gorm:"type:varchar(32);not null;index"`
	AvailableBikes int       `json:"available_bikes" gorm:"not null"`
	FreeSlots      int       `json:"free_slots" gorm:"not null"`
	Amount         float64   `json:"amount" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Entry) TableName() string {
	return "journal_entries"
}

func (e *Entry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Summary aggregates the entries of a session.
type Summary struct {
	Total       int
	ByOutcome   map[string]int
	QuotedTotal float64
}
