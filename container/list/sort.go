package list

// Sort sorts the elements of l in place by relinking them; values never move
// between elements. ordered(a, b) reports whether a may stay in front of b.
//
// Sort repeatedly walks the list and swaps adjacent pairs that are out of
// order until a pass makes no swap. A pair is out of order when ordered(a, b)
// is false and ordered(b, a) is true, so elements that compare as equal keep
// their relative order and the sort is stable. It does not allocate and runs
// in O(n²) time in the worst case.
func (l *List[T]) Sort(ordered func(a, b *Element[T]) bool) {
	if l == nil || ordered == nil {
		return
	}

	for swapped := true; swapped; {
		swapped = false
		for e := l.head; e != nil && e.next != nil; {
			if ordered(e, e.next) || !ordered(e.next, e) {
				e = e.next
				continue
			}
			// e moves one step towards the tail; keep comparing it.
			l.swapNext(e)
			swapped = true
		}
	}
}

// swapNext exchanges the positions of e and its successor, which must exist.
func (l *List[T]) swapNext(e *Element[T]) {
	n := e.next
	before, after := e.prev, n.next

	if before != nil {
		before.next = n
	} else {
		l.head = n
	}
	if after != nil {
		after.prev = e
	} else {
		l.tail = e
	}

	n.prev = before
	n.next = e
	e.prev = n
	e.next = after
}
