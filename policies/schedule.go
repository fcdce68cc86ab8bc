package policies

// LinearSchedule interpolates a value from Begin to End over Steps
// environment steps and stays at End afterwards. Used for the
// exploration rate and the learning rate.
type LinearSchedule struct {
	Begin float64
	End   float64
	Steps int
}

func NewLinearSchedule(begin, end float64, steps int) *LinearSchedule {
	return &LinearSchedule{
		Begin: begin,
		End:   end,
		Steps: steps,
	}
}

// ConstantSchedule keeps the value fixed at v.
func ConstantSchedule(v float64) *LinearSchedule {
	return &LinearSchedule{Begin: v, End: v, Steps: 0}
}

func (l *LinearSchedule) Value(step int) float64 {
	if l.Steps <= 0 || step >= l.Steps {
		return l.End
	}
	if step <= 0 {
		return l.Begin
	}
	return l.Begin + (l.End-l.Begin)*float64(step)/float64(l.Steps)
}
