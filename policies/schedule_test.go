package policies

import "testing"

func TestLinearScheduleEndpoints(t *testing.T) {
	s := NewLinearSchedule(1.0, 0.01, 100)
	if v := s.Value(0); v != 1.0 {
		t.Errorf("value at step 0 is %v, want 1.0", v)
	}
	if v := s.Value(100); v != 0.01 {
		t.Errorf("value at step 100 is %v, want 0.01", v)
	}
	if v := s.Value(1000); v != 0.01 {
		t.Errorf("value past the schedule is %v, want 0.01", v)
	}
}

func TestLinearScheduleMonotone(t *testing.T) {
	s := NewLinearSchedule(1.0, 0.0, 50)
	prev := s.Value(0)
	for step := 1; step <= 50; step++ {
		v := s.Value(step)
		if v > prev {
			t.Fatalf("schedule increased at step %d: %v > %v", step, v, prev)
		}
		prev = v
	}
}

func TestConstantSchedule(t *testing.T) {
	s := ConstantSchedule(0.5)
	for _, step := range []int{0, 1, 10, 10000} {
		if v := s.Value(step); v != 0.5 {
			t.Errorf("value at step %d is %v, want 0.5", step, v)
		}
	}
}
