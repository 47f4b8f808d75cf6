// Package list implements an intrusive doubly linked list.
//
// Elements are owned by the caller, usually embedded as a field of a larger
// struct, and the list only rewires their links. Linking and unlinking never
// allocate.
//
// To iterate over a list (where l is a *List[T]):
//	for e := l.Head(); e != nil; e = e.Next() {
//		// do something with e.Value
//	}
//
// A List is not safe for concurrent use.
package list

import "iter"

// Element is an element of a linked list.
// The zero value is an unlinked element ready to be linked into a list.
type Element[T any] struct {
	// Next and previous pointers in the list, nil at the ends.
	next, prev *Element[T]

	// The list to which this element belongs, nil if unlinked.
	list *List[T]

	// The value stored with this element. The list never copies or frees it.
	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if e == nil || e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if e == nil || e.list == nil {
		return nil
	}
	return e.prev
}

// List returns the list e belongs to, or nil if e is not linked.
func (e *Element[T]) List() *List[T] {
	if e == nil {
		return nil
	}
	return e.list
}

// Data returns the value stored with e, or the zero value if e is nil.
func (e *Element[T]) Data() T {
	if e == nil {
		var zero T
		return zero
	}
	return e.Value
}

// Unlink removes e from the list it belongs to. It is a no-op if e is nil or
// not linked. The value stored with e is left untouched.
func (e *Element[T]) Unlink() {
	if e == nil || e.list == nil {
		return
	}
	l := e.list

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}

	e.next = nil
	e.prev = nil
	e.list = nil
}

// List represents a doubly linked list.
// The zero value for List is an empty list ready to use.
type List[T any] struct {
	head, tail *Element[T]
}

// Init initializes list l to the empty state.
func (l *List[T]) Init() *List[T] {
	l.head = nil
	l.tail = nil
	return l
}

// New returns an initialized list.
func New[T any]() *List[T] { return new(List[T]) }

// Flush unlinks every element of l, leaving their links and owner reset.
// Values are not touched.
func (l *List[T]) Flush() {
	if l == nil {
		return
	}
	for l.head != nil {
		l.head.Unlink()
	}
}

// Clear resets l to empty without touching its elements. The detached
// elements still reference l and must not be linked again until they are
// zeroed by the caller.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	l.head = nil
	l.tail = nil
}

// linkable reports whether e may be linked into l next to mark.
func (l *List[T]) linkable(e, mark *Element[T]) bool {
	if l == nil || e == nil {
		return false
	}
	if e.list != nil {
		fail("element is already linked")
		return false
	}
	if mark != nil && mark.list != l {
		fail("mark is not an element of the list")
		return false
	}
	return true
}

// insert links e after at, or at the head of l if at is nil.
func (l *List[T]) insert(e, at *Element[T], v T) {
	e.Value = v
	e.list = l
	e.prev = at
	if at != nil {
		e.next = at.next
		at.next = e
	} else {
		e.next = l.head
		l.head = e
	}
	if e.next != nil {
		e.next.prev = e
	} else {
		l.tail = e
	}
}

// Append links e at the back of list l with value v.
// e must not belong to any list.
func (l *List[T]) Append(e *Element[T], v T) {
	if !l.linkable(e, nil) {
		return
	}
	l.insert(e, l.tail, v)
}

// Prepend links e at the front of list l with value v.
// e must not belong to any list.
func (l *List[T]) Prepend(e *Element[T], v T) {
	if !l.linkable(e, nil) {
		return
	}
	l.insert(e, nil, v)
}

// InsertBefore links e immediately before mark with value v. If mark is nil,
// e is appended. mark must be an element of l.
func (l *List[T]) InsertBefore(e, mark *Element[T], v T) {
	if !l.linkable(e, mark) {
		return
	}
	if mark == nil {
		l.insert(e, l.tail, v)
		return
	}
	l.insert(e, mark.prev, v)
}

// InsertAfter links e immediately after mark with value v. If mark is nil,
// e is prepended. mark must be an element of l.
func (l *List[T]) InsertAfter(e, mark *Element[T], v T) {
	if !l.linkable(e, mark) {
		return
	}
	l.insert(e, mark, v)
}

// Head returns the first element of list l or nil if the list is empty.
func (l *List[T]) Head() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Tail returns the last element of list l or nil if the list is empty.
func (l *List[T]) Tail() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Count returns the number of elements of list l.
// The complexity is O(n).
func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}
	n := 0
	for e := l.head; e != nil; e = e.next {
		n++
	}
	return n
}

// Contains reports whether e is an element of l.
func (l *List[T]) Contains(e *Element[T]) bool {
	return l != nil && e != nil && e.list == l
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Apply calls fn for each element of l, from the head if fwd is set and from
// the tail otherwise, and stops at the first element for which fn returns
// true. It returns that element, or nil if fn never returned true.
//
// fn may unlink the element it is given. Unlinking any other element of l
// during the traversal is not allowed.
func (l *List[T]) Apply(fwd bool, fn func(e *Element[T]) bool) *Element[T] {
	if l == nil || fn == nil {
		return nil
	}

	e := l.head
	if !fwd {
		e = l.tail
	}
	for e != nil {
		// fn may reset e's links.
		next := e.next
		if !fwd {
			next = e.prev
		}
		if fn(e) {
			return e
		}
		e = next
	}
	return nil
}

// All returns an iterator over the elements of l from head to tail.
// The loop body may unlink the element it is given.
func (l *List[T]) All() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		l.Apply(true, func(e *Element[T]) bool { return !yield(e) })
	}
}

// Backward returns an iterator over the elements of l from tail to head.
// The loop body may unlink the element it is given.
func (l *List[T]) Backward() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		l.Apply(false, func(e *Element[T]) bool { return !yield(e) })
	}
}

// Values returns an iterator over the values of l from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Apply(true, func(e *Element[T]) bool { return !yield(e.Value) })
	}
}
