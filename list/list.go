package list

import "iter"

// Element is a node of a List. Its address and Value stay put while the
// element is moved within or between lists.
type Element[E any] struct {
	next, prev *Element[E]
	list       *List[E]

	// The value stored with this element.
	Value E
}

// Next returns the next list element or nil.
func (e *Element[E]) Next() *Element[E] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[E]) Prev() *Element[E] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[E any] struct {
	root Element[E] // sentinel; only next and prev are used
	len  int
}

// Init initializes or clears list l.
func (l *List[E]) Init() *List[E] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// New returns an initialized list.
func New[E any]() *List[E] { return new(List[E]).Init() }

// From returns a list holding values in order.
func From[E any](values ...E) *List[E] {
	l := New[E]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements of list l.
func (l *List[E]) Len() int { return l.len }

// Front returns the first element of list l or nil if the list is empty.
func (l *List[E]) Front() *Element[E] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[E]) Back() *Element[E] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[E]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// insert inserts e after at and increments l.len.
func (l *List[E]) insert(e, at *Element[E]) *Element[E] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// unlink detaches e from l and decrements l.len.
func (l *List[E]) unlink(e *Element[E]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// move moves e to next to at.
func (l *List[E]) move(e, at *Element[E]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// Remove removes e from l if e is an element of list l and returns e.Value.
func (l *List[E]) Remove(e *Element[E]) E {
	if e.list == l {
		l.unlink(e)
	}
	return e.Value
}

// PushFront inserts a new element with value v at the front of list l.
func (l *List[E]) PushFront(v E) *Element[E] {
	l.lazyInit()
	return l.insert(&Element[E]{Value: v}, &l.root)
}

// PushBack inserts a new element with value v at the back of list l.
func (l *List[E]) PushBack(v E) *Element[E] {
	l.lazyInit()
	return l.insert(&Element[E]{Value: v}, l.root.prev)
}

// InsertBefore inserts a new element with value v immediately before mark.
// If mark is not an element of l, the list is not modified.
func (l *List[E]) InsertBefore(v E, mark *Element[E]) *Element[E] {
	if mark.list != l {
		return nil
	}
	return l.insert(&Element[E]{Value: v}, mark.prev)
}

// InsertAfter inserts a new element with value v immediately after mark.
// If mark is not an element of l, the list is not modified.
func (l *List[E]) InsertAfter(v E, mark *Element[E]) *Element[E] {
	if mark.list != l {
		return nil
	}
	return l.insert(&Element[E]{Value: v}, mark)
}

// MoveToFront moves element e to the front of list l.
func (l *List[E]) MoveToFront(e *Element[E]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.move(e, &l.root)
}

// MoveToBack moves element e to the back of list l.
func (l *List[E]) MoveToBack(e *Element[E]) {
	if e.list != l || l.root.prev == e {
		return
	}
	l.move(e, l.root.prev)
}

// MoveBefore moves element e to its new position before mark.
// If e or mark is not an element of l, or e == mark, the list is not modified.
func (l *List[E]) MoveBefore(e, mark *Element[E]) {
	if e.list != l || e == mark || mark.list != l {
		return
	}
	l.move(e, mark.prev)
}

// MoveAfter moves element e to its new position after mark.
// If e or mark is not an element of l, or e == mark, the list is not modified.
func (l *List[E]) MoveAfter(e, mark *Element[E]) {
	if e.list != l || e == mark || mark.list != l {
		return
	}
	l.move(e, mark)
}

// Splice relinks e, which may belong to any list, in front of mark, or at the
// back of l when mark is nil. The element keeps its address and Value.
// If e belongs to no list or mark is not an element of l, nothing happens.
func (l *List[E]) Splice(e, mark *Element[E]) {
	if e.list == nil || e == mark || (mark != nil && mark.list != l) {
		return
	}
	l.lazyInit()
	at := l.root.prev
	if mark != nil {
		at = mark.prev
	}
	if e.list == l {
		l.move(e, at)
		return
	}
	e.list.unlink(e)
	l.insert(e, at)
}

// Elements yields the elements of l front to back. The element just yielded
// may be moved or removed without disturbing the iteration.
func (l *List[E]) Elements() iter.Seq[*Element[E]] {
	return func(yield func(*Element[E]) bool) {
		for e := l.Front(); e != nil; {
			next := e.Next()
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

// All yields the values of l front to back.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Slots yields a pointer to the value of every element front to back.
func (l *List[E]) Slots() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(&e.Value) {
				return
			}
		}
	}
}

// Values returns a copy of the values of l front to back.
func (l *List[E]) Values() []E {
	out := make([]E, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
