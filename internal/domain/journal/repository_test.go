package journal

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:journal_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewRepository(db))
}

func TestRecordAssignsIDAndSequence(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	first, err := svc.Record(ctx, Entry{Command: CommandBorrow, Outcome: OutcomeBorrowed, AvailableBikes: 19, FreeSlots: 1})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if first.Seq != 1 {
		t.Fatalf("expected seq 1, got %d", first.Seq)
	}

	second, err := svc.Record(ctx, Entry{Command: CommandReturn, Outcome: OutcomeReturned, AvailableBikes: 20})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if second.Seq != 2 {
		t.Fatalf("expected seq 2, got %d", second.Seq)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %s twice", first.ID)
	}
}

func TestListReturnsEntriesInOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	outcomes := []string{OutcomeBorrowed, OutcomeQuoted, OutcomeReturned}
	for _, outcome := range outcomes {
		if _, err := svc.Record(ctx, Entry{Command: CommandUnknown, Outcome: outcome}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != len(outcomes) {
		t.Fatalf("expected %d entries, got %d", len(outcomes), len(entries))
	}
	for i, e := range entries {
		if e.Outcome != outcomes[i] {
			t.Fatalf("entry %d: expected outcome %s, got %s", i, outcomes[i], e.Outcome)
		}
		if e.Seq != i+1 {
			t.Fatalf("entry %d: expected seq %d, got %d", i, i+1, e.Seq)
		}
	}
}

func TestSummaryOnEmptyJournal(t *testing.T) {
	svc := setupTestService(t)

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if sum.Total != 0 || sum.QuotedTotal != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}

func TestSummaryCountsOutcomes(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	records := []Entry{
		{Command: CommandBorrow, Outcome: OutcomeBorrowed},
		{Command: CommandBorrow, Outcome: OutcomeBorrowed},
		{Command: CommandEstimate, Outcome: OutcomeQuoted, Amount: 4},
		{Command: CommandEstimate, Outcome: OutcomeQuoted, Amount: 7.5},
		{Command: CommandEstimate, Outcome: OutcomeInvalidBikeKind},
		{Command: CommandUnknown, Outcome: OutcomeInvalidChoice},
	}
	for _, e := range records {
		if _, err := svc.Record(ctx, e); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if sum.Total != 6 {
		t.Fatalf("expected total 6, got %d", sum.Total)
	}
	if sum.ByOutcome[OutcomeBorrowed] != 2 {
		t.Fatalf("expected 2 borrowed, got %d", sum.ByOutcome[OutcomeBorrowed])
	}
	if sum.ByOutcome[OutcomeQuoted] != 2 {
		t.Fatalf("expected 2 quoted, got %d", sum.ByOutcome[OutcomeQuoted])
	}
	if sum.QuotedTotal != 11.5 {
		t.Fatalf("expected quoted total 11.5, got %v", sum.QuotedTotal)
	}
}
