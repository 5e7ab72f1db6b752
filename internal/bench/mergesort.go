package bench

import "cmp"

// MergeSort is a top-down merge sort with one scratch buffer, the
// hand-written baseline.
func MergeSort[E cmp.Ordered](s []E) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, make([]E, len(s)))
}

// buf must be as long as s.
func mergeSort[E cmp.Ordered](s, buf []E) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid])
	mergeSort(s[mid:], buf[mid:])

	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if buf[j] < buf[i] {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:])
}
