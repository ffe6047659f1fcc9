package meal

import (
	"context"
	"errors"
	"io"

	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
)

// Source yields entries in receipt order. Next returns io.EOF once the
// client has finished sending.
type Source interface {
	Next() (Entry, error)
}

// Sink receives per-entry reports in receipt order.
type Sink interface {
	Emit(Report) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Entry, error)

// Next calls fn.
func (fn SourceFunc) Next() (Entry, error) { return fn() }

// SinkFunc adapts a function to Sink.
type SinkFunc func(Report) error

// Emit calls fn.
func (fn SinkFunc) Emit(r Report) error { return fn(r) }

// Tally drives sessions against a shared read-only menu.
type Tally struct {
	menu     *menu.Menu
	activity *activitylog.Logger
}

// NewTally returns a Tally reading from m and recording to activity.
func NewTally(m *menu.Menu, activity *activitylog.Logger) *Tally {
	return &Tally{menu: m, activity: activity}
}

// Run emits one report per entry until src is exhausted, then closes the
// session. On any receive or emit failure the session is discarded and the
// failure returned.
func (t *Tally) Run(ctx context.Context, src Source, sink Sink) (Total, error) {
	session := NewSession(t.menu)
	for {
		entry, err := t.next(ctx, src)
		if errors.Is(err, io.EOF) {
			total, closeErr := session.Close()
			if closeErr != nil {
				return Total{}, closeErr
			}
			t.activity.Printf("DiningCalorieServer: Stream completed - Total calories: %d", total.TotalCalories)
			return total, nil
		}
		if err != nil {
			return Total{}, err
		}

		t.activity.Printf("DiningCalorieServer: Processing food item - Name: %s, Quantity: %d", entry.Name, entry.Quantity)
		report, err := session.Add(entry)
		if err != nil {
			t.activity.Printf("DiningCalorieServer: Rejected food item - %v", err)
			return Total{}, err
		}
		t.logReport(report, "Calculated calories")
		if err := sink.Emit(report); err != nil {
			t.activity.Printf("DiningCalorieServer: Stream error - %v", err)
			return Total{}, err
		}
	}
}

// Aggregate consumes src without emitting per-entry reports and returns
// the session total once src is exhausted.
func (t *Tally) Aggregate(ctx context.Context, src Source) (Total, error) {
	session := NewSession(t.menu)
	for {
		entry, err := t.next(ctx, src)
		if errors.Is(err, io.EOF) {
			total, closeErr := session.Close()
			if closeErr != nil {
				return Total{}, closeErr
			}
			t.activity.Printf("DiningCalorieServer: Calculation completed - %s", total.Message)
			return total, nil
		}
		if err != nil {
			return Total{}, err
		}

		t.activity.Printf("DiningCalorieServer: Processing total calculation - Food: %s, Quantity: %d", entry.Name, entry.Quantity)
		report, err := session.Add(entry)
		if err != nil {
			t.activity.Printf("DiningCalorieServer: Rejected food item - %v", err)
			return Total{}, err
		}
		t.logReport(report, "Added to total")
	}
}

func (t *Tally) next(ctx context.Context, src Source) (Entry, error) {
	if err := ctx.Err(); err != nil {
		t.activity.Printf("DiningCalorieServer: Stream error - %v", err)
		return Entry{}, err
	}
	entry, err := src.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		t.activity.Printf("DiningCalorieServer: Stream error - %v", err)
	}
	return entry, err
}

func (t *Tally) logReport(report Report, verb string) {
	if !report.Found {
		t.activity.Printf("DiningCalorieServer: Food item not found - %s", report.Name)
		return
	}
	t.activity.Printf("DiningCalorieServer: %s - Food: %s, Calories: %d, Total: %d",
		verb, report.Name, report.Calories, report.RunningTotal)
}
