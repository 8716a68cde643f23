package adaptive

// Levels is the CEFR ladder used to bias phrase selection when nothing is due
var Levels = []string{"A1", "A2", "B1", "B2", "C1"}

const (
	// WindowSize is the number of outcomes evaluated per window
	WindowSize = 12
	// AdvanceThreshold is the window accuracy needed to move one level up
	AdvanceThreshold = 0.75
	// RetreatThreshold is the window accuracy at or below which the level drops
	RetreatThreshold = 0.35
)

// Controller tracks rolling answer accuracy and raises or lowers a difficulty
// tier one CEFR step at a time. The tier only influences which phrases are
// offered when no review is due; it never filters the due set.
type Controller struct {
	levelIdx      int
	windowCount   int
	windowCorrect int
}

// State is the persistable snapshot of a controller
type State struct {
	CurrentLevel  string `json:"current_level"`
	WindowCount   int    `json:"window_count"`
	WindowCorrect int    `json:"window_correct"`
}

// New creates a controller starting at the given level. An unknown or empty
// level starts at the bottom of the ladder.
func New(startLevel string) *Controller {
	return &Controller{levelIdx: levelIndex(startLevel)}
}

// Restore rebuilds a controller from a persisted snapshot
func Restore(s State) *Controller {
	c := New(s.CurrentLevel)
	c.windowCount = s.WindowCount
	c.windowCorrect = s.WindowCorrect
	return c
}

// CurrentLevel returns the active CEFR level
func (c *Controller) CurrentLevel() string {
	return Levels[c.levelIdx]
}

// RecordOutcome feeds one answer into the rolling window. When the window
// fills, the level moves at most one step and both counters reset.
func (c *Controller) RecordOutcome(correct bool) {
	c.windowCount++
	if correct {
		c.windowCorrect++
	}

	if c.windowCount < WindowSize {
		return
	}

	accuracy := float64(c.windowCorrect) / float64(c.windowCount)
	switch {
	case accuracy >= AdvanceThreshold && c.levelIdx < len(Levels)-1:
		c.levelIdx++
	case accuracy <= RetreatThreshold && c.levelIdx > 0:
		c.levelIdx--
	}

	c.windowCount = 0
	c.windowCorrect = 0
}

// Snapshot returns the persistable state of the controller
func (c *Controller) Snapshot() State {
	return State{
		CurrentLevel:  c.CurrentLevel(),
		WindowCount:   c.windowCount,
		WindowCorrect: c.windowCorrect,
	}
}

func levelIndex(level string) int {
	for i, l := range Levels {
		if l == level {
			return i
		}
	}
	return 0
}
