package grid

import (
	"grid-dqn/replay"
	"grid-dqn/types"
)

const (
	ActionNothing = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	NumActions
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type Position struct {
	I int
	J int
}

func (p Position) Eq(other Position) bool {
	return p.I == other.I && p.J == other.J
}

// Vector encodes the position as the flat state the replay store holds.
func (p Position) Vector() []float64 {
	return []float64{float64(p.I), float64(p.J)}
}

// Door teleports the agent when it steps onto From.
type Door struct {
	From Position
	To   Position
}

// GridEnvironment is a bounded gridworld with an absorbing goal cell
// and optional teleporting doors. Each step costs StepReward; reaching
// the goal yields GoalReward and ends the episode.
type GridEnvironment struct {
	Height int
	Width  int
	Goal   Position
	Doors  []Door

	StepReward float64
	GoalReward float64

	curPos Position
}

var _ types.Environment = &GridEnvironment{}

func NewGridEnvironment(height, width int, goal Position, doors ...Door) *GridEnvironment {
	return &GridEnvironment{
		Height:     height,
		Width:      width,
		Goal:       goal,
		Doors:      doors,
		StepReward: -0.01,
		GoalReward: 1.0,
		curPos:     Position{0, 0},
	}
}

func (g *GridEnvironment) Reset() []float64 {
	g.curPos = Position{0, 0}
	return g.curPos.Vector()
}

func (g *GridEnvironment) Step(action int) ([]float64, float64, bool) {
	newPos := g.curPos
	switch action {
	case ActionNothing:
	case ActionUp:
		newPos.I = min(g.Height-1, g.curPos.I+1)
	case ActionDown:
		newPos.I = max(0, g.curPos.I-1)
	case ActionLeft:
		newPos.J = max(0, g.curPos.J-1)
	case ActionRight:
		newPos.J = min(g.Width-1, g.curPos.J+1)
	}
	for _, d := range g.Doors {
		if d.From.Eq(newPos) {
			newPos = d.To
			break
		}
	}
	g.curPos = newPos

	if newPos.Eq(g.Goal) {
		return newPos.Vector(), g.GoalReward, true
	}
	return newPos.Vector(), g.StepReward, false
}

func (g *GridEnvironment) StateShape() replay.Shape {
	return replay.Shape{2}
}

func (g *GridEnvironment) NumActions() int {
	return NumActions
}
