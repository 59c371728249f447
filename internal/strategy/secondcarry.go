package strategy

// SecondCarry holds the second-nearest contract on the curve. Entry always
// takes the second contract, never the front. The only roll trigger is the
// held contract becoming the front of the curve; it deliberately does not
// check whether the held contract is still quoted at all, so a contract that
// expires without a final print stays held with no quote to mark against.
type SecondCarry struct{}

func (SecondCarry) Name() string { return "second-carry" }

func (SecondCarry) Step(st State, obs Observation) (State, string) {
	if len(obs.Available) < 2 {
		// Thin day: record no assignment, but an existing position is
		// not reset by a gap in availability.
		return st, ""
	}
	front, second := obs.Available[0], obs.Available[1]

	switch st.Held {
	case "":
		st.Held = second
	case front:
		// Held contract reached the front of the curve: roll out.
		st.Held = second
	}
	return st, st.Held
}
