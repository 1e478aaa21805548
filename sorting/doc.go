// Package sorting implements six classic comparison sorts over Go slices:
// bubble, selection, insertion, merge, quick and heap sort.
//
// 🚀 What is in the box?
//
//	Every algorithm comes in two flavors:
//	  • XxxSort(s)            — for any cmp.Ordered element type
//	  • XxxSortFunc(s, less)  — for any element type with a LessFunc
//
//	All of them sort into non-decreasing order and mutate s in place
//	(merge sort borrows an auxiliary buffer of at most len(s) elements).
//
// ✨ Algorithm table:
//
//	Algorithm  | Best       | Average    | Worst      | Extra space | Stable
//	-----------+------------+------------+------------+-------------+-------
//	Bubble     | O(n)       | O(n²)      | O(n²)      | O(1)        | yes
//	Selection  | O(n²)      | O(n²)      | O(n²)      | O(1)        | no
//	Insertion  | O(n)       | O(n²)      | O(n²)      | O(1)        | yes
//	Merge      | O(n log n) | O(n log n) | O(n log n) | O(n)        | yes
//	Quick      | O(n log n) | O(n log n) | O(n²)      | O(log n)    | no
//	Heap       | O(n log n) | O(n log n) | O(n log n) | O(1)        | no
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsort/sorting"
//
//	xs := []int{64, 34, 25, 12, 22, 11, 90}
//	sorting.MergeSort(xs) // xs == [11 12 22 25 34 64 90]
//
//	// pick the algorithm at runtime
//	algo, _ := sorting.ParseAlgorithm("heap")
//	if err := sorting.Sort(xs, algo); err != nil {
//	  // only ErrUnknownAlgorithm is possible here
//	}
//
//	// sort records by key, keeping equal keys in input order
//	sorting.InsertionSortFunc(people, func(a, b Person) bool { return a.Age < b.Age })
//
// Guarantees:
//
//   - Sequences of length 0 or 1 return immediately; less is never called.
//   - Output is a permutation of the input; duplicates are never lost.
//   - No algorithm panics on valid input. Errors appear only at the dispatch
//     boundary (Sort, SortFunc, SortRange).
//   - Nothing is synchronized. Concurrent callers must pass distinct slices.
package sorting
