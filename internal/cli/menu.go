package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"bikestation/internal/domain/journal"
	"bikestation/internal/domain/station"
)

const (
	choiceBorrow   = 1
	choiceReturn   = 2
	choiceEstimate = 3
	choiceQuit     = 4
)

// Recorder receives one entry per menu outcome.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) (*journal.Entry, error)
}

type Option func(*Menu)

// WithRecorder attaches a session journal to the menu.
func WithRecorder(r Recorder) Option {
	return func(m *Menu) {
		m.recorder = r
	}
}

// Menu is the text front-end of a station. It reads whitespace separated
// integers from in and writes prompts and results to out.
type Menu struct {
	svc      *station.Service
	in       *bufio.Scanner
	out      io.Writer
	recorder Recorder
}

func NewMenu(svc *station.Service, in io.Reader, out io.Writer, opts ...Option) *Menu {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	m := &Menu{svc: svc, in: sc, out: out}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops until the quit command or the end of input. Station errors are
// reported to out and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printBanner()

		choice, ok, err := m.readInt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			m.println("")
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			m.invalidChoice(ctx)
			continue
		}

		switch choice {
		case choiceBorrow:
			m.borrow(ctx)
		case choiceReturn:
			m.returnBike(ctx)
		case choiceEstimate:
			err := m.estimate(ctx)
			if errors.Is(err, io.EOF) {
				m.println("")
				return nil
			}
			if err != nil {
				return err
			}
		case choiceQuit:
			m.println("Goodbye!")
			m.record(ctx, journal.CommandQuit, journal.OutcomeQuit, 0)
			return nil
		default:
			m.invalidChoice(ctx)
		}
	}
}

func (m *Menu) printBanner() {
	st := m.svc.Status()
	m.println("")
	m.println("****** Bike station management ******")
	m.println("-------------------------------------")
	m.printf("Available bikes: %d\n", st.AvailableBikes)
	m.printf("Free docking points: %d\n", st.FreeSlots)
	m.println("-------------------------------------")
	m.println("1. Borrow a bike")
	m.println("2. Return a bike")
	m.println("3. Estimate the rental cost")
	m.println("4. Quit")
}

func (m *Menu) borrow(ctx context.Context) {
	if err := m.svc.Borrow(); err != nil {
		m.println("No bike available.")
		m.record(ctx, journal.CommandBorrow, journal.OutcomeStationEmpty, 0)
		return
	}
	m.println("Bike borrowed.")
	m.record(ctx, journal.CommandBorrow, journal.OutcomeBorrowed, 0)
}

func (m *Menu) returnBike(ctx context.Context) {
	if err := m.svc.ReturnBike(); err != nil {
		m.println("Station full, cannot return the bike.")
		m.record(ctx, journal.CommandReturn, journal.OutcomeStationFull, 0)
		return
	}
	m.println("Bike returned.")
	m.record(ctx, journal.CommandReturn, journal.OutcomeReturned, 0)
}

// estimate prompts for a duration and a bike kind, then prints the quote.
// Both values are read before either is validated.
func (m *Menu) estimate(ctx context.Context) error {
	minutes, minutesOK, err := m.readInt("Enter the rental duration in minutes: ")
	if err != nil {
		return err
	}
	kind, kindOK, err := m.readInt("Bike type (1 = mechanical, 2 = electric): ")
	if err != nil {
		return err
	}

	if !kindOK {
		kind = 0
	}
	if !minutesOK {
		minutes = -1
	}

	quote, err := m.svc.EstimateCost(minutes, station.BikeKind(kind))
	switch {
	case errors.Is(err, station.ErrInvalidBikeKind):
		m.println("Invalid bike type.")
		m.record(ctx, journal.CommandEstimate, journal.OutcomeInvalidBikeKind, 0)
		return nil
	case errors.Is(err, station.ErrInvalidDuration):
		m.println("Invalid duration.")
		m.record(ctx, journal.CommandEstimate, journal.OutcomeInvalidDuration, 0)
		return nil
	case err != nil:
		return err
	}

	if quote.Amount > 0 {
		m.printf("The rental price is %.2f euros.\n", quote.Amount)
	}
	m.record(ctx, journal.CommandEstimate, journal.OutcomeQuoted, quote.Amount)
	return nil
}

func (m *Menu) invalidChoice(ctx context.Context) {
	m.println("Invalid choice, please try again.")
	m.record(ctx, journal.CommandUnknown, journal.OutcomeInvalidChoice, 0)
}

// readInt prompts and scans the next token. ok is false when the token is
// not an integer. io.EOF is returned once the input is exhausted.
func (m *Menu) readInt(prompt string) (int, bool, error) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return 0, false, fmt.Errorf("read input: %w", err)
		}
		return 0, false, io.EOF
	}
	n, err := strconv.Atoi(m.in.Text())
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (m *Menu) record(ctx context.Context, command, outcome string, amount float64) {
	if m.recorder == nil {
		return
	}
	st := m.svc.Status()
	_, err := m.recorder.Record(ctx, journal.Entry{
		Command:        command,
		Outcome:        outcome,
		AvailableBikes: st.AvailableBikes,
		FreeSlots:      st.FreeSlots,
		Amount:         amount,
	})
	if err != nil {
		log.Printf("journal_error command=%s outcome=%s error=%q", command, outcome, err)
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}
