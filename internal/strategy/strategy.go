package strategy

import (
	"fmt"
	"time"
)

// Observation is what a roll rule sees on one trading day.
type Observation struct {
	Index int
	Date  time.Time
	// Available lists the contracts quoted today, nearest delivery first.
	Available []string
}

// State is the fold accumulator carried between days. Held is the contract
// currently in the book; empty means flat.
type State struct {
	Held string
}

// Roller decides, day by day, which single contract the book holds.
// Step is a pure transition: it takes the prior state and today's
// observation and returns the next state plus the assignment to record for
// today (empty = no position recorded).
type Roller interface {
	Name() string
	Step(st State, obs Observation) (State, string)
}

// Build returns the roll rule registered under name.
func Build(name string) (Roller, error) {
	switch name {
	case SecondCarry{}.Name():
		return SecondCarry{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}

// Names lists the registered roll rules.
func Names() []string {
	return []string{SecondCarry{}.Name()}
}
