package grid

import "testing"

func TestResetReturnsOrigin(t *testing.T) {
	env := NewGridEnvironment(4, 4, Position{3, 3})
	state := env.Reset()
	if state[0] != 0 || state[1] != 0 {
		t.Errorf("reset state %v, want [0 0]", state)
	}
}

func TestStepClampsAtWalls(t *testing.T) {
	env := NewGridEnvironment(3, 3, Position{2, 2})
	env.Reset()
	state, _, done := env.Step(ActionDown)
	if done {
		t.Fatal("episode ended against a wall")
	}
	if state[0] != 0 || state[1] != 0 {
		t.Errorf("moving down at the boundary gave %v, want [0 0]", state)
	}
	state, _, _ = env.Step(ActionLeft)
	if state[0] != 0 || state[1] != 0 {
		t.Errorf("moving left at the boundary gave %v, want [0 0]", state)
	}
}

func TestGoalEndsEpisode(t *testing.T) {
	env := NewGridEnvironment(2, 2, Position{1, 1})
	env.Reset()
	env.Step(ActionUp)
	state, reward, done := env.Step(ActionRight)
	if !done {
		t.Fatal("episode did not end at the goal")
	}
	if reward != env.GoalReward {
		t.Errorf("goal reward %v, want %v", reward, env.GoalReward)
	}
	if state[0] != 1 || state[1] != 1 {
		t.Errorf("goal state %v, want [1 1]", state)
	}
}

func TestStepReward(t *testing.T) {
	env := NewGridEnvironment(3, 3, Position{2, 2})
	env.Reset()
	_, reward, _ := env.Step(ActionUp)
	if reward != env.StepReward {
		t.Errorf("step reward %v, want %v", reward, env.StepReward)
	}
}

func TestDoorTeleports(t *testing.T) {
	env := NewGridEnvironment(5, 5, Position{4, 4}, Door{
		From: Position{1, 0},
		To:   Position{3, 3},
	})
	env.Reset()
	state, _, done := env.Step(ActionUp)
	if done {
		t.Fatal("teleport ended the episode")
	}
	if state[0] != 3 || state[1] != 3 {
		t.Errorf("door gave state %v, want [3 3]", state)
	}
}
