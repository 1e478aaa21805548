package sorting

import "cmp"

// HeapSort sorts s in non-decreasing order using in-place heap sort.
//
// Algorithm:
//  1. Heapify: sift down every internal node from n/2-1 down to the root,
//     turning s into a max-heap.
//  2. For end = n-1 down to 1: swap the root (current maximum) with s[end]
//     and sift the new root down within s[:end].
//
// Complexity: O(n log n) in every case, O(1) extra space. Not stable.
func HeapSort[T cmp.Ordered](s []T) {
	HeapSortFunc(s, orderedLess[T])
}

// HeapSortFunc is HeapSort ordered by less.
func HeapSortFunc[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(s, root, n, less)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// considering only s[:size].
func siftDown[T any](s []T, root, size int, less LessFunc[T]) {
	for {
		largest := root
		l := 2*root + 1
		r := l + 1
		if l < size && less(s[largest], s[l]) {
			largest = l
		}
		if r < size && less(s[largest], s[r]) {
			largest = r
		}
		if largest == root {
			return
		}
		s[root], s[largest] = s[largest], s[root]
		root = largest
	}
}
