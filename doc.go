// Package lvsort is a small suite of classic sorting and searching
// algorithms over Go slices, with input generators and a benchmark harness
// to compare them.
//
// 🚀 What is in lvsort?
//
//	• Sorting: bubble, selection, insertion, merge, quick and heap sort for any
//	  cmp.Ordered type or any type with a less function
//	• Searching: linear, binary (iterative and recursive), interpolation,
//	  exponential and rotated-sorted search, returning an index or -1
//	• Input generators: seeded random, sorted, reversed, nearly sorted,
//	  few-unique and all-equal sequences
//	• Benchmark harness: runs every algorithm over a size × shape grid on a
//	  worker pool and writes text, JSON, YAML or TOML reports
//
// ✨ Why lvsort?
//
//   - Readable reference implementations with documented complexity
//   - Deterministic: every random input flows from an explicit seed
//   - Errors only at the dispatch boundary; the algorithms never fail
//
// Packages:
//
//	sorting/  — the six sorts, Sort/SortFunc/SortRange dispatch, comparison counting
//	search/   — the six searches and Search dispatch; NotFound == -1
//	seqgen/   — deterministic sequence generators and RNG helpers
//	harness/  — benchmark runner, verification and report codecs
//	cmd/lvsort — command-line front end (sort, search, bench, algorithms)
//
// Quick start:
//
//	xs := []int{64, 34, 25, 12, 22, 11, 90}
//	sorting.QuickSort(xs)                 // [11 12 22 25 34 64 90]
//	i := search.BinaryIterative(xs, 25)   // 2
//	j := search.Rotated([]int{4, 5, 6, 7, 0, 1, 2}, 0) // 4
//
// See each subpackage's doc.go for algorithm tables and usage notes.
package lvsort
