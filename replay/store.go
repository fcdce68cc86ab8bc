package replay

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"
)

var (
	// ErrConfiguration indicates an invalid capacity or a degenerate shape at construction.
	ErrConfiguration = errors.New("invalid replay configuration")
	// ErrShapeMismatch indicates batch fields whose element counts disagree with the
	// configured shapes or with each other.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrNotReady indicates a sample request before the store has been filled once.
	ErrNotReady = errors.New("replay store not ready")
	// ErrTooLarge indicates a sample request larger than the store capacity.
	ErrTooLarge = errors.New("sample size exceeds capacity")
)

// Store is a fixed-capacity FIFO buffer of SARS transitions.
// Each transition is packed into one row of a dense matrix laid out as
// [state | action | reward | done | next_state]; row 0 holds the oldest
// retained transition and row capacity-1 the most recent one.
//
// Store is not safe for concurrent use. The training loop is expected to
// call Push and Sample sequentially; layering collectors on top requires
// external locking.
type Store struct {
	capacity int

	stateShape  Shape
	actionShape Shape
	rewardShape Shape

	stateSize  int
	actionSize int
	rewardSize int
	recordLen  int

	// seen counts transitions ever pushed, capped at capacity.
	// The sampling gate derives from it and never reverts.
	seen int

	queue *mat.Dense
	src   rand.Source
}

// New allocates a zero-initialized store for the given capacity and
// per-transition tensor shapes. The done flag is implicitly scalar.
// Empty action and reward shapes are allowed and treated as scalars.
func New(capacity int, stateShape, actionShape, rewardShape Shape) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", ErrConfiguration, capacity)
	}
	for _, shape := range []Shape{stateShape, actionShape, rewardShape} {
		if err := shape.validate(); err != nil {
			return nil, err
		}
	}
	s := &Store{
		capacity:    capacity,
		stateShape:  stateShape.clone(),
		actionShape: actionShape.clone(),
		rewardShape: rewardShape.clone(),
		stateSize:   stateShape.Size(),
		actionSize:  actionShape.Size(),
		rewardSize:  rewardShape.Size(),
		src:         rand.NewSource(uint64(time.Now().UnixNano())),
	}
	s.recordLen = 2*s.stateSize + s.actionSize + s.rewardSize + 1
	s.queue = mat.NewDense(capacity, s.recordLen, nil)
	return s, nil
}

// Capacity returns the fixed number of transitions the store retains.
func (s *Store) Capacity() int {
	return s.capacity
}

// Seen returns the number of transitions ever pushed, capped at capacity.
func (s *Store) Seen() int {
	return s.seen
}

// RecordLen returns the width of one packed transition row.
func (s *Store) RecordLen() int {
	return s.recordLen
}

// ShouldSample reports whether the store has been filled to capacity at
// least once. Sampling earlier would mix zero-initialized rows into the
// minibatch, so Sample rejects it.
func (s *Store) ShouldSample() bool {
	return s.seen >= s.capacity
}

// Encode packs a batch into an (n, recordLen) matrix with rows laid out
// as [state | action | reward | done | next_state]. It is pure and
// validates that every field carries exactly n examples of the
// configured shape.
func (s *Store) Encode(b Batch) (*mat.Dense, error) {
	if err := s.checkBatch(b); err != nil {
		return nil, err
	}
	records := mat.NewDense(b.N, s.recordLen, nil)
	for i := 0; i < b.N; i++ {
		row := records.RawRowView(i)
		off := 0
		off += copy(row[off:], b.States[i*s.stateSize:(i+1)*s.stateSize])
		off += copy(row[off:], b.Actions[i*s.actionSize:(i+1)*s.actionSize])
		off += copy(row[off:], b.Rewards[i*s.rewardSize:(i+1)*s.rewardSize])
		row[off] = b.Dones[i]
		off++
		copy(row[off:], b.NextStates[i*s.stateSize:(i+1)*s.stateSize])
	}
	return records, nil
}

// Decode is the inverse of Encode. It slices each row at the fixed field
// boundaries and returns the batch of transitions.
func (s *Store) Decode(records mat.Matrix) (Batch, error) {
	n, c := records.Dims()
	if c != s.recordLen {
		return Batch{}, fmt.Errorf("%w: record length %d, want %d", ErrShapeMismatch, c, s.recordLen)
	}
	aDiv := s.stateSize
	rDiv := aDiv + s.actionSize
	dDiv := rDiv + s.rewardSize
	spDiv := dDiv + 1

	b := Batch{
		N:          n,
		States:     make([]float64, n*s.stateSize),
		Actions:    make([]float64, n*s.actionSize),
		Rewards:    make([]float64, n*s.rewardSize),
		NextStates: make([]float64, n*s.stateSize),
		Dones:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < s.stateSize; j++ {
			b.States[i*s.stateSize+j] = records.At(i, j)
			b.NextStates[i*s.stateSize+j] = records.At(i, spDiv+j)
		}
		for j := 0; j < s.actionSize; j++ {
			b.Actions[i*s.actionSize+j] = records.At(i, aDiv+j)
		}
		for j := 0; j < s.rewardSize; j++ {
			b.Rewards[i*s.rewardSize+j] = records.At(i, rDiv+j)
		}
		b.Dones[i] = records.At(i, dDiv)
	}
	return b, nil
}

// Push encodes the batch and inserts it at the tail of the queue,
// evicting the oldest rows to make room. A batch larger than the
// capacity keeps only its most recent capacity transitions. A failing
// push leaves the store unchanged.
func (s *Store) Push(b Batch) error {
	records, err := s.Encode(b)
	if err != nil {
		return err
	}
	n := b.N
	if n > s.capacity {
		// only the trailing window of the incoming batch survives
		records = records.Slice(n-s.capacity, n, 0, s.recordLen).(*mat.Dense)
		n = s.capacity
	}
	if !s.ShouldSample() {
		s.seen += b.N
		if s.seen > s.capacity {
			s.seen = s.capacity
		}
	}
	s.evict(n)
	for i := 0; i < n; i++ {
		s.queue.SetRow(s.capacity-n+i, records.RawRowView(i))
	}
	return nil
}

// PushOne inserts a single transition, funnelling through Push.
func (s *Store) PushOne(state, action, reward, nextState []float64, done bool) error {
	return s.Push(Single(state, action, reward, nextState, done))
}

// Sample draws n distinct rows uniformly at random, without replacement,
// and decodes them. It fails before the store has been filled once and
// for requests larger than the capacity. Repeated calls are independent.
func (s *Store) Sample(n int) (Batch, error) {
	if !s.ShouldSample() {
		return Batch{}, fmt.Errorf("%w: seen %d of %d transitions", ErrNotReady, s.seen, s.capacity)
	}
	if n > s.capacity {
		return Batch{}, fmt.Errorf("%w: requested %d, capacity %d", ErrTooLarge, n, s.capacity)
	}
	if n <= 0 {
		return Batch{}, fmt.Errorf("%w: sample size %d must be positive", ErrShapeMismatch, n)
	}
	indices := make([]int, n)
	sampleuv.WithoutReplacement(indices, s.capacity, s.src)
	picked := mat.NewDense(n, s.recordLen, nil)
	for i, idx := range indices {
		picked.SetRow(i, s.queue.RawRowView(idx))
	}
	return s.Decode(picked)
}

// evict shifts the queue up by n rows, discarding the n oldest.
func (s *Store) evict(n int) {
	raw := s.queue.RawMatrix()
	copy(raw.Data, raw.Data[n*raw.Stride:])
}

func (s *Store) checkBatch(b Batch) error {
	if b.N <= 0 {
		return fmt.Errorf("%w: empty batch", ErrShapeMismatch)
	}
	if len(b.States) != b.N*s.stateSize {
		return fmt.Errorf("%w: states have %d elements, want %d", ErrShapeMismatch, len(b.States), b.N*s.stateSize)
	}
	if len(b.Actions) != b.N*s.actionSize {
		return fmt.Errorf("%w: actions have %d elements, want %d", ErrShapeMismatch, len(b.Actions), b.N*s.actionSize)
	}
	if len(b.Rewards) != b.N*s.rewardSize {
		return fmt.Errorf("%w: rewards have %d elements, want %d", ErrShapeMismatch, len(b.Rewards), b.N*s.rewardSize)
	}
	if len(b.NextStates) != b.N*s.stateSize {
		return fmt.Errorf("%w: next states have %d elements, want %d", ErrShapeMismatch, len(b.NextStates), b.N*s.stateSize)
	}
	if len(b.Dones) != b.N {
		return fmt.Errorf("%w: done flags have %d elements, want %d", ErrShapeMismatch, len(b.Dones), b.N)
	}
	return nil
}
