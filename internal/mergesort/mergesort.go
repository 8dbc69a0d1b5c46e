// Package mergesort provides recursive (top-down) and iterative (bottom-up)
// merge sort with comparison counting.
//
// Both variants share the same merge step, so for a given input they perform
// the same kind of work and differ only in how the subranges are scheduled.
// A comparison is counted once per step of the merge loop.
package mergesort

// Less reports whether a sorts before b
type Less[T any] func(a, b T) bool

// Recursive sorts s in place with top-down merge sort and returns the number
// of comparisons made. On equal keys the right run wins, so the sort is not
// stable.
func Recursive[T any](s []T, less Less[T]) int64 {
	if len(s) < 2 {
		return 0
	}
	m := newMerger(s, less)
	m.sortRange(0, len(s)-1)
	return m.comparisons
}

// Iterative sorts s in place with bottom-up merge sort and returns the number
// of comparisons made. Equal keys are merged as in Recursive.
func Iterative[T any](s []T, less Less[T]) int64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	m := newMerger(s, less)
	for width := 1; width < n; width *= 2 {
		for left := 0; left < n-width; left += 2 * width {
			mid := left + width - 1
			right := min(left+2*width-1, n-1)
			m.merge(left, mid, right)
		}
	}
	return m.comparisons
}

type merger[T any] struct {
	s           []T
	buf         []T
	less        Less[T]
	comparisons int64
}

func newMerger[T any](s []T, less Less[T]) *merger[T] {
	return &merger[T]{s: s, buf: make([]T, len(s)), less: less}
}

func (m *merger[T]) sortRange(left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	m.sortRange(left, mid)
	m.sortRange(mid+1, right)
	m.merge(left, mid, right)
}

// merge combines the sorted runs s[left..mid] and s[mid+1..right]
func (m *merger[T]) merge(left, mid, right int) {
	copy(m.buf[left:right+1], m.s[left:right+1])

	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		m.comparisons++
		// the left element is taken only when strictly smaller; which run
		// empties first decides the comparison count on equal keys
		if m.less(m.buf[i], m.buf[j]) {
			m.s[k] = m.buf[i]
			i++
		} else {
			m.s[k] = m.buf[j]
			j++
		}
		k++
	}
	k += copy(m.s[k:], m.buf[i:mid+1])
	copy(m.s[k:], m.buf[j:right+1])
}
