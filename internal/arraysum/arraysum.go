package arraysum

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

const (
	// MinValue is the smallest value an element can take.
	MinValue = 1
	// MaxValue is the largest value an element can take.
	MaxValue = 10
)

// ArraySum owns an immutable array of integers in [MinValue, MaxValue] and
// exposes two equivalent reductions over it.
type ArraySum struct {
	values []int32
}

// Option configures the random source used by New.
type Option func(*options)

type options struct {
	source rand.Source
}

// WithSource draws elements from src instead of a freshly seeded generator.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.source = src }
}

// WithSeed makes the generated array deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }
}

// New allocates size elements, each an independent uniform draw over
// [MinValue, MaxValue]. Without options the generator is seeded once from
// runtime entropy. A size of 0 yields an empty array.
func New(size int, opts ...Option) (*ArraySum, error) {
	if size < 0 {
		return nil, apperrors.ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("must be non-negative, got %d", size),
		}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(o.source)

	values := make([]int32, size)
	for i := range values {
		values[i] = MinValue + rng.Int32N(MaxValue-MinValue+1)
	}
	return &ArraySum{values: values}, nil
}

// FromValues builds an ArraySum over a copy of values, bypassing
// randomisation.
func FromValues(values []int32) *ArraySum {
	return &ArraySum{values: append([]int32(nil), values...)}
}

// Len returns the number of elements.
func (a *ArraySum) Len() int { return len(a.values) }

// At returns the element at index i.
func (a *ArraySum) At(i int) int32 { return a.values[i] }

// Values returns a copy of the elements.
func (a *ArraySum) Values() []int32 {
	return append([]int32(nil), a.values...)
}

// SequentialSum returns the sum of all elements in a single pass.
func (a *ArraySum) SequentialSum() int64 {
	return sumRange(a.values)
}

// ParallelSum partitions the array into threadCount chunks, sums each chunk
// on its own goroutine and returns the total of the partial sums.
func (a *ArraySum) ParallelSum(threadCount int) (int64, error) {
	partials, err := a.PartialSums(threadCount)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, p := range partials {
		total += p
	}
	return total, nil
}

// PartialSums runs the parallel phase of ParallelSum and returns the
// per-chunk totals in chunk order. One goroutine is spawned per chunk and
// all of them are joined before returning.
func (a *ArraySum) PartialSums(threadCount int) ([]int64, error) {
	chunks, err := Partition(len(a.values), threadCount)
	if err != nil {
		return nil, err
	}

	partials := make([]int64, len(chunks))
	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			// slot c.Index is written by this goroutine only
			partials[c.Index] = sumRange(a.values[c.Start:c.End])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

func sumRange(values []int32) int64 {
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return sum
}
