// Package aisched time-slices expensive per-agent work across frames.
//
// Each frame the caller asks for a contiguous, wrapping slice of population
// indices no larger than the per-frame budget, processes it, and advances a
// cursor it owns. A budget of zero means "everything, every frame".
package aisched

import "iter"

// ComputeSlice returns the range of indices to process this frame. Index i of
// the slice maps to population index (start+i) % total.
func ComputeSlice(total, budget, cursor int) (start, count int) {
	if total <= 0 {
		return 0, 0
	}
	return wrap(cursor, total), sliceCount(total, budget)
}

// AdvanceCursor returns the cursor for the next frame. The cursor is left
// untouched when there is nothing to process or the budget is unbounded.
func AdvanceCursor(total, budget, cursor int) int {
	if total <= 0 || budget <= 0 {
		return cursor
	}
	return (wrap(cursor, total) + sliceCount(total, budget)) % total
}

func sliceCount(total, budget int) int {
	if budget <= 0 {
		return total
	}
	return min(budget, total)
}

func wrap(cursor, total int) int {
	return ((cursor % total) + total) % total
}

// Slice is one frame's share of the population.
type Slice struct {
	Start, Count, Total int
}

// Indices yields the population indices covered by the slice, in order.
func (s Slice) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.Count; i++ {
			if !yield((s.Start + i) % s.Total) {
				return
			}
		}
	}
}

// Cursor is the persistent scheduling position for one population. The zero
// value starts at index 0. It is not safe for concurrent use.
type Cursor struct {
	pos int
}

// Position returns the index the next slice starts at.
func (c *Cursor) Position() int { return c.pos }

// Clamp pulls the cursor back into [0, total) after the population shrank.
func (c *Cursor) Clamp(total int) {
	if total <= 0 {
		c.pos = 0
		return
	}
	if c.pos >= total || c.pos < 0 {
		c.pos = wrap(c.pos, total)
	}
}

// Next returns this frame's slice and advances the cursor.
func (c *Cursor) Next(total, budget int) Slice {
	start, count := ComputeSlice(total, budget, c.pos)
	c.pos = AdvanceCursor(total, budget, c.pos)
	return Slice{Start: start, Count: count, Total: total}
}

// FramesForCoverage is the number of frames needed to visit every index once.
func FramesForCoverage(total, budget int) int {
	if total <= 0 {
		return 0
	}
	if budget <= 0 || budget >= total {
		return 1
	}
	return (total + budget - 1) / budget
}
