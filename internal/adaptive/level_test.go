package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(c *Controller, correct, wrong int) {
	for i := 0; i < correct; i++ {
		c.RecordOutcome(true)
	}
	for i := 0; i < wrong; i++ {
		c.RecordOutcome(false)
	}
}

func TestNewStartsAtFloorForUnknownLevel(t *testing.T) {
	assert.Equal(t, "A1", New("").CurrentLevel())
	assert.Equal(t, "A1", New("Z9").CurrentLevel())
	assert.Equal(t, "B1", New("B1").CurrentLevel())
}

func TestAdvanceOnHighAccuracy(t *testing.T) {
	c := New("A1")

	// 10/12 = 0.83 >= 0.75
	feed(c, 10, 2)
	assert.Equal(t, "A2", c.CurrentLevel())
}

func TestRetreatOnLowAccuracy(t *testing.T) {
	c := New("B1")

	// 4/12 = 0.33 <= 0.35
	feed(c, 4, 8)
	assert.Equal(t, "A2", c.CurrentLevel())
}

func TestHoldInMiddleBand(t *testing.T) {
	c := New("B1")

	// 6/12 = 0.5, between the thresholds
	feed(c, 6, 6)
	assert.Equal(t, "B1", c.CurrentLevel())
}

func TestLevelOnlyChangesAtWindowBoundary(t *testing.T) {
	c := New("A1")

	for i := 0; i < WindowSize-1; i++ {
		c.RecordOutcome(true)
		assert.Equal(t, "A1", c.CurrentLevel(), "level must not move before the window fills")
	}
	c.RecordOutcome(true)
	assert.Equal(t, "A2", c.CurrentLevel())
}

func TestCeilingAndFloorAreNoOps(t *testing.T) {
	c := New("C1")
	feed(c, 12, 0)
	assert.Equal(t, "C1", c.CurrentLevel(), "no advance past the ceiling")

	c = New("A1")
	feed(c, 0, 12)
	assert.Equal(t, "A1", c.CurrentLevel(), "no retreat past the floor")
}

func TestWindowResetsAfterEvaluation(t *testing.T) {
	c := New("A1")
	feed(c, 12, 0)
	assert.Equal(t, "A2", c.CurrentLevel())

	// The next window starts from scratch: eleven wrong answers then one
	// correct answer must evaluate 1/12, not carry anything over
	feed(c, 0, 11)
	assert.Equal(t, "A2", c.CurrentLevel())
	c.RecordOutcome(true)
	assert.Equal(t, "A1", c.CurrentLevel())
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New("B2")
	feed(c, 3, 2)

	restored := Restore(c.Snapshot())
	assert.Equal(t, c.CurrentLevel(), restored.CurrentLevel())
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}
