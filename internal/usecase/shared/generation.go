package shared

// Generation identifies the latest issued operation for one logical target. An
// operation captures Next() when it starts and applies its result only while
// IsCurrent still holds. Callers guard it with their own mutex so that the check and
// the state change happen together.
type Generation struct {
	current uint64
}

func (g *Generation) Next() uint64 {
	g.current++
	return g.current
}

func (g *Generation) Current() uint64 {
	return g.current
}

func (g *Generation) IsCurrent(v uint64) bool {
	return v == g.current
}
