package meal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
)

func sliceSource(entries []Entry, tail error) Source {
	i := 0
	return SourceFunc(func() (Entry, error) {
		if i >= len(entries) {
			return Entry{}, tail
		}
		e := entries[i]
		i++
		return e, nil
	})
}

type collectSink struct {
	reports []Report
	failAt  int
}

func (s *collectSink) Emit(r Report) error {
	if s.failAt > 0 && len(s.reports)+1 == s.failAt {
		return errors.New("peer gone")
	}
	s.reports = append(s.reports, r)
	return nil
}

var order = []Entry{
	{Name: "hamburger", Quantity: 1},
	{Name: "unobtainium-stew", Quantity: 2},
	{Name: "Ramen", Quantity: 2},
	{Name: "kimchi"},
}

func TestRunEmitsOneReportPerEntryInOrder(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	sink := &collectSink{}
	total, err := tally.Run(context.Background(), sliceSource(order, io.EOF), sink)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.reports) != len(order) {
		t.Fatalf("reports = %d, want %d", len(sink.reports), len(order))
	}
	wantNames := []string{"hamburger", "unobtainium-stew", "ramen", "kimchi"}
	wantTotals := []int{550, 550, 1450, 1465}
	for i, r := range sink.reports {
		if r.Name != wantNames[i] {
			t.Fatalf("report[%d].Name = %q, want %q", i, r.Name, wantNames[i])
		}
		if r.RunningTotal != wantTotals[i] {
			t.Fatalf("report[%d].RunningTotal = %d, want %d", i, r.RunningTotal, wantTotals[i])
		}
	}
	if total.TotalCalories != 1465 || total.ItemCount != 3 {
		t.Fatalf("total = %+v, want 1465 over 3 items", total)
	}
}

func TestRunSessionsAreIndependent(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	first, second := &collectSink{}, &collectSink{}
	totalA, errA := tally.Run(context.Background(), sliceSource(order, io.EOF), first)
	totalB, errB := tally.Run(context.Background(), sliceSource(order, io.EOF), second)
	if errA != nil || errB != nil {
		t.Fatalf("Run errors: %v, %v", errA, errB)
	}
	if totalA != totalB {
		t.Fatalf("totals differ: %+v vs %+v", totalA, totalB)
	}
	for i := range first.reports {
		if first.reports[i] != second.reports[i] {
			t.Fatalf("report[%d] differs: %+v vs %+v", i, first.reports[i], second.reports[i])
		}
	}
}

func TestRunReceiveErrorDiscardsSession(t *testing.T) {
	var buf bytes.Buffer
	tally := NewTally(menu.Default(), activitylog.New(&buf))
	sink := &collectSink{}
	transportErr := errors.New("connection reset")
	total, err := tally.Run(context.Background(), sliceSource(order[:2], transportErr), sink)
	if !errors.Is(err, transportErr) {
		t.Fatalf("err = %v, want %v", err, transportErr)
	}
	if total != (Total{}) {
		t.Fatalf("total = %+v, want zero", total)
	}
	if len(sink.reports) != 2 {
		t.Fatalf("reports = %d, want 2 emitted before failure", len(sink.reports))
	}
	if !strings.Contains(buf.String(), "Stream error - connection reset") {
		t.Fatalf("activity log = %q, want stream error entry", buf.String())
	}
}

func TestRunEmitErrorStopsOutput(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	sink := &collectSink{failAt: 2}
	_, err := tally.Run(context.Background(), sliceSource(order, io.EOF), sink)
	if err == nil {
		t.Fatal("expected emit error")
	}
	if len(sink.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(sink.reports))
	}
}

func TestRunCanceledContext(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tally.Run(ctx, sliceSource(order, io.EOF), &collectSink{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want %v", err, context.Canceled)
	}
}

func TestAggregateSuppressesReports(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	total, err := tally.Aggregate(context.Background(), sliceSource(order, io.EOF))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := Total{TotalCalories: 1465, ItemCount: 3, Message: "Total calories for 3 items: 1465"}
	if total != want {
		t.Fatalf("Aggregate = %+v, want %+v", total, want)
	}
}

func TestAggregateEmpty(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	total, err := tally.Aggregate(context.Background(), sliceSource(nil, io.EOF))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if total.Message != "Total calories for 0 items: 0" {
		t.Fatalf("message = %q", total.Message)
	}
}

func TestAggregateNegativeQuantity(t *testing.T) {
	tally := NewTally(menu.Default(), activitylog.Discard())
	_, err := tally.Aggregate(context.Background(), sliceSource([]Entry{{Name: "beer", Quantity: -2}}, io.EOF))
	if err == nil {
		t.Fatal("expected negative quantity to fail")
	}
}
