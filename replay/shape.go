package replay

import "fmt"

// Shape describes the dimensions of a per-transition tensor.
// The empty shape is the scalar shape and has size 1.
type Shape []int

// Size returns the flattened element count, the product of all dimensions.
func (s Shape) Size() int {
	size := 1
	for _, d := range s {
		size *= d
	}
	return size
}

func (s Shape) validate() error {
	for _, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w: shape %v has a non-positive dimension", ErrConfiguration, []int(s))
		}
	}
	return nil
}

func (s Shape) clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}
