package journal

import "errors"

var (
	ErrEmptyCommand = errors.New("journal entry command is required")
	ErrEmptyOutcome = errors.New("journal entry outcome is required")
)
