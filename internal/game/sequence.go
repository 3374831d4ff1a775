package game

// DefaultGoal is how many chips of one type an attempt must connect.
const DefaultGoal = 3

// EnterResult is the matcher's verdict on a chip the pointer entered.
type EnterResult int

const (
	EnterRecorded  EnterResult = iota // new chip added to the chain
	EnterDuplicate                    // chip already in the chain, nothing changed
	EnterWrongType                    // type differs from the locked target, attempt fails
	EnterComplete                     // chain reached the goal
)

func (r EnterResult) String() string {
	switch r {
	case EnterRecorded:
		return "recorded"
	case EnterDuplicate:
		return "duplicate"
	case EnterWrongType:
		return "wrong_type"
	case EnterComplete:
		return "complete"
	}
	return "unknown"
}

// Matcher validates the order in which chips are entered during one attempt.
type Matcher struct {
	goal     int
	target   string // "" while no attempt is in progress
	sequence map[string]struct{}
	chain    []*Chip
}

// NewMatcher creates a matcher for the given goal (DefaultGoal if <= 0).
func NewMatcher(goal int) *Matcher {
	if goal <= 0 {
		goal = DefaultGoal
	}
	return &Matcher{goal: goal, sequence: make(map[string]struct{}, goal)}
}

// Enter records that the pointer entered chip. The first chip of an attempt
// locks the target type. EnterComplete leaves the chain intact so the caller
// can consume it before calling Reset.
func (m *Matcher) Enter(c *Chip) EnterResult {
	c.Over = true
	if m.target == "" {
		m.target = c.Frame
	}
	if c.Frame != m.target {
		return EnterWrongType
	}
	result := EnterDuplicate
	if _, seen := m.sequence[c.Key()]; !seen {
		m.sequence[c.Key()] = struct{}{}
		m.chain = append(m.chain, c)
		result = EnterRecorded
	}
	if len(m.sequence) == m.goal {
		return EnterComplete
	}
	return result
}

// Exit clears the chip's overlap flag and nothing else.
func (m *Matcher) Exit(c *Chip) {
	c.Over = false
}

// Reset clears the chain, the key set and the locked target.
func (m *Matcher) Reset() {
	clear(m.sequence)
	m.chain = m.chain[:0]
	m.target = ""
}

// Target returns the locked chip type, or "" when idle.
func (m *Matcher) Target() string {
	return m.target
}

// Chain returns the recorded chips in entry order.
func (m *Matcher) Chain() []*Chip {
	return m.chain
}

// Count returns the number of distinct chips recorded.
func (m *Matcher) Count() int {
	return len(m.sequence)
}

// Goal returns the chain length that completes an attempt.
func (m *Matcher) Goal() int {
	return m.goal
}
