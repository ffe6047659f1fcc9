// Package meal accumulates calories across one streamed dining session.
package meal

import (
	"fmt"
	"math"

	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
)

// NotFoundMessage is reported for food names absent from the menu.
const NotFoundMessage = "Food item not found in database. Please check the menu for available items."

// MaxCalories caps per-entry calories and the running total so every
// figure fits the int32 wire fields and the messages quote the same value.
const MaxCalories = math.MaxInt32

// State is the lifecycle state of a Session.
type State int

const (
	// StateOpen accepts entries.
	StateOpen State = iota
	// StateClosed accepts nothing further.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Entry is one ordered food item. A zero quantity counts as one serving.
type Entry struct {
	Name     string
	Quantity int
}

// Report is the per-entry outcome emitted in receipt order.
type Report struct {
	Name         string
	Calories     int
	Message      string
	Found        bool
	RunningTotal int
}

// Total is the aggregate emitted when a session closes.
type Total struct {
	TotalCalories int
	ItemCount     int
	Message       string
}

// Session owns the accumulator for one stream. It is not safe for
// concurrent use; each stream owns exactly one Session.
type Session struct {
	menu         *menu.Menu
	state        State
	runningTotal int
	itemCount    int
}

// NewSession returns an OPEN session reading from m.
func NewSession(m *menu.Menu) *Session {
	return &Session{menu: m, state: StateOpen}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// RunningTotal returns the calories accumulated so far.
func (s *Session) RunningTotal() int { return s.runningTotal }

// ItemCount returns the number of recognized entries so far.
func (s *Session) ItemCount() int { return s.itemCount }

// Add applies one entry. Unknown foods report zero calories and leave the
// accumulator untouched. A negative quantity closes the session.
func (s *Session) Add(e Entry) (Report, error) {
	if s.state != StateOpen {
		return Report{}, apperrors.New(apperrors.CodeMealSessionClosed, "meal session is closed")
	}
	if e.Quantity < 0 {
		s.state = StateClosed
		return Report{}, apperrors.InvalidField(apperrors.CodeMealInvalidQuantity, "quantity", "Quantity must not be negative")
	}
	quantity := e.Quantity
	if quantity == 0 {
		quantity = 1
	}

	name := menu.Key(e.Name)
	item, ok := s.menu.Lookup(name)
	if !ok {
		return Report{
			Name:         name,
			Message:      NotFoundMessage,
			RunningTotal: s.runningTotal,
		}, nil
	}

	calories := saturate(item.Calories * quantity)
	s.runningTotal = saturate(s.runningTotal + calories)
	s.itemCount++
	return Report{
		Name:         item.Name,
		Calories:     calories,
		Message:      fmt.Sprintf("%s: %d calories per serving (Total so far: %d kcal)", item.Name, item.Calories, s.runningTotal),
		Found:        true,
		RunningTotal: s.runningTotal,
	}, nil
}

// Close moves the session to CLOSED and returns its aggregate.
func (s *Session) Close() (Total, error) {
	if s.state != StateOpen {
		return Total{}, apperrors.New(apperrors.CodeMealSessionClosed, "meal session is closed")
	}
	s.state = StateClosed
	return Total{
		TotalCalories: s.runningTotal,
		ItemCount:     s.itemCount,
		Message:       fmt.Sprintf("Total calories for %d items: %d", s.itemCount, s.runningTotal),
	}, nil
}

func saturate(n int) int {
	if n > MaxCalories {
		return MaxCalories
	}
	return n
}
