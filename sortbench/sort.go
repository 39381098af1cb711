// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import "math/bits"

// MergeThreshold is the largest run HybridMergeSort sorts by
// insertion.
const MergeThreshold = 15

// IntroThreshold is the run length below which IntroSort sorts by
// insertion.
const IntroThreshold = 16

// MergeSort sorts a with top-down merge sort.
func MergeSort(a []int) {
	if len(a) < 2 {
		return
	}
	buf := make([]int, len(a))
	mergeSort(a, buf, 0)
}

// HybridMergeSort sorts a with merge sort, switching to insertion
// sort for runs of at most MergeThreshold elements.
func HybridMergeSort(a []int) {
	if len(a) < 2 {
		return
	}
	buf := make([]int, len(a))
	mergeSort(a, buf, MergeThreshold)
}

func mergeSort(a, buf []int, threshold int) {
	if len(a) <= threshold {
		insertionSort(a)
		return
	}
	if len(a) < 2 {
		return
	}
	mid := (len(a) - 1) / 2
	mergeSort(a[:mid+1], buf[:mid+1], threshold)
	mergeSort(a[mid+1:], buf[mid+1:], threshold)
	merge(a, buf, mid+1)
}

// merge merges the sorted halves a[:mid] and a[mid:] using buf as
// scratch space. The merge is stable.
func merge(a, buf []int, mid int) {
	copy(buf, a)
	l, r := buf[:mid], buf[mid:len(a)]
	i, j, k := 0, 0, 0
	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			a[k] = l[i]
			i++
		} else {
			a[k] = r[j]
			j++
		}
		k++
	}
	k += copy(a[k:], l[i:])
	copy(a[k:], r[j:])
}

func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// QuickSort sorts a with quicksort using the Lomuto partition scheme
// and the last element as pivot. Already-sorted and reversed inputs
// take quadratic time.
func QuickSort(a []int) {
	if len(a) < 2 {
		return
	}
	p := partition(a)
	QuickSort(a[:p])
	QuickSort(a[p+1:])
}

// partition partitions a around its last element and returns the
// pivot's final index.
func partition(a []int) int {
	last := len(a) - 1
	pivot := a[last]
	i := 0
	for j := 0; j < last; j++ {
		if a[j] <= pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[last] = a[last], a[i]
	return i
}

// IntroSort sorts a with quicksort, switching to insertion sort for
// runs shorter than IntroThreshold and to heap sort once the
// recursion depth exceeds 2·⌊log2 n⌋.
func IntroSort(a []int) {
	if len(a) < 2 {
		return
	}
	introSort(a, 2*(bits.Len(uint(len(a)))-1))
}

func introSort(a []int, depth int) {
	if len(a) < 2 {
		return
	}
	if len(a) < IntroThreshold {
		insertionSort(a)
		return
	}
	if depth <= 0 {
		heapSort(a)
		return
	}
	p := partition(a)
	introSort(a[:p], depth-1)
	introSort(a[p+1:], depth-1)
}

func heapSort(a []int) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for i := n - 1; i > 0; i-- {
		a[0], a[i] = a[i], a[0]
		siftDown(a, 0, i)
	}
}

// siftDown restores the max-heap property of a[:n] below root.
func siftDown(a []int, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && a[child+1] > a[child] {
			child++
		}
		if a[root] >= a[child] {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}
