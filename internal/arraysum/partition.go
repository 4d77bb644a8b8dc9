package arraysum

import (
	"fmt"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// Chunk is a contiguous half-open index range [Start, End) owned by exactly
// one worker.
type Chunk struct {
	Index int
	Start int
	End   int
}

// Len returns the number of indices covered by the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// String implements fmt.Stringer.
func (c Chunk) String() string {
	return fmt.Sprintf("#%d[%d,%d)", c.Index, c.Start, c.End)
}

// Partition splits [0, size) into threadCount contiguous chunks.
//
// The last chunk absorbs the remainder of size / threadCount. When
// threadCount exceeds size every chunk but the last is empty.
func Partition(size, threadCount int) ([]Chunk, error) {
	if threadCount < 1 {
		return nil, apperrors.ValidationError{
			Field:   "threads",
			Message: fmt.Sprintf("must be at least 1, got %d", threadCount),
		}
	}
	if size < 0 {
		return nil, apperrors.ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("must be non-negative, got %d", size),
		}
	}

	chunkSize := size / threadCount
	chunks := make([]Chunk, threadCount)
	for i := range chunks {
		end := (i + 1) * chunkSize
		if i == threadCount-1 {
			end = size
		}
		chunks[i] = Chunk{Index: i, Start: i * chunkSize, End: end}
	}
	return chunks, nil
}
