// Package search locates a target value inside a slice without modifying it.
//
// Algorithms and their preconditions:
//
//	Algorithm         | Input requirement                   | Time           | Space
//	------------------+-------------------------------------+----------------+---------
//	Linear            | none                                | O(n)           | O(1)
//	BinaryIterative   | sorted ascending                    | O(log n)       | O(1)
//	BinaryRecursive   | sorted ascending                    | O(log n)       | O(log n)
//	Interpolation     | sorted ascending, numeric           | O(log log n)*  | O(1)
//	Exponential       | sorted ascending                    | O(log i)       | O(1)
//	Rotated           | sorted ascending then rotated,      | O(log n)       | O(1)
//	                  | no duplicates                       |                |
//
//	* expected on near-uniform data; O(n) worst case.
//
// Every function returns the index of a matching element, or NotFound (-1)
// when the target is absent. Absence is a value, never an error.
//
// Preconditions are documented, not checked: passing unsorted data to a
// search that requires sorted input yields an unspecified index or NotFound,
// silently. All midpoints are computed as low + (high-low)/2.
//
//	xs := []int{11, 12, 22, 25, 34, 50, 64, 76, 88, 90}
//	i := search.BinaryIterative(xs, 25) // 3
//	j := search.BinaryIterative(xs, 26) // search.NotFound
//
// Functions are pure reads; any number of goroutines may search the same
// slice concurrently as long as nobody writes to it.
package search
