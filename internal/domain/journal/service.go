package journal

import (
	"context"
	"fmt"
	"strings"
)

// Service numbers and stores session entries. Not safe for concurrent use.
type Service struct {
	repo Repository
	seq  int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, e Entry) (*Entry, error) {
	e.Command = strings.TrimSpace(e.Command)
	e.Outcome = strings.TrimSpace(e.Outcome)
	if e.Command == "" {
		return nil, ErrEmptyCommand
	}
	if e.Outcome == "" {
		return nil, ErrEmptyOutcome
	}

	e.Seq = s.seq + 1
	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("record journal entry: %w", err)
	}
	s.seq = e.Seq
	return &e, nil
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{ByOutcome: make(map[string]int)}
	for _, e := range entries {
		sum.Total++
		sum.ByOutcome[e.Outcome]++
		if e.Outcome == OutcomeQuoted {
			sum.QuotedTotal += e.Amount
		}
	}
	return sum, nil
}
