// Package combinations visits permutations and fixed-size combinations of a slice,
// following Knuth, The Art of Computer Programming 4A:
//
//   - 7.2.1.2 algorithm L for permutations (lexicographic by position)
//   - 7.2.1.3 algorithm T for combinations (colexicographic by position)
//
// Both work on an internal index vector and only copy items when a result is yielded.
// Every yielded slice is freshly allocated and may be kept by the caller.
package combinations

import "iter"

// Permutations yields every ordering of items. Items are distinguished by position, so
// repeated values produce repeated permutations. The number of results is len(items)!.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if n == 0 {
			yield([]T{})
			return
		}
		// a[0] is a sentinel; a[1..n] hold 1-based positions.
		a := make([]int, n+1)
		for i := range a {
			a[i] = i
		}
		for {
			result := make([]T, n)
			for i, idx := range a[1:] {
				result[i] = items[idx-1]
			}
			if !yield(result) {
				return
			}

			j := n - 1
			for j > 0 && a[j+1] <= a[j] {
				j--
			}
			if j == 0 {
				return
			}
			l := n
			for a[j] >= a[l] {
				l--
			}
			a[j], a[l] = a[l], a[j]
			for k, l := j+1, n; k < l; k, l = k+1, l-1 {
				a[k], a[l] = a[l], a[k]
			}
		}
	}
}

// Combinations yields every choice of size items. For [10 20 30 40] in groups of 2
// the order is [10 20] [10 30] [20 30] [10 40] [20 40] [30 40].
func Combinations[T any](items []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		switch {
		case size < 0 || size > n:
			return
		case size == 0:
			yield([]T{})
			return
		case size == n:
			yield(append([]T(nil), items...))
			return
		}

		// c[0..size-1] are the chosen positions, c[size] and c[size+1] are sentinels.
		c := make([]int, size+2)
		for i := 0; i < size; i++ {
			c[i] = i
		}
		c[size] = n
		j := size
		for {
			result := make([]T, size)
			for i, idx := range c[:size] {
				result[i] = items[idx]
			}
			if !yield(result) {
				return
			}

			var x int
			if j > 0 {
				x = j
			} else {
				if c[0]+1 < c[1] {
					c[0]++
					continue
				}
				j = 2
				for {
					c[j-2] = j - 2
					x = c[j-1] + 1
					if x != c[j] {
						break
					}
					j++
				}
				if j > size {
					return
				}
			}
			c[j-1] = x
			j--
		}
	}
}

// Count returns how many values seq yields.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
