// Package list implements a generic doubly linked list whose elements can be
// relinked in O(1), within a list or between lists, without copying values.
//
// The API follows container/list, adding Splice to move an element across
// lists and iterators over elements, values and value slots. A *List satisfies
// both patience.Container and patience.Splicer, so patience.Sort reorders its
// elements by relinking them; pointers to elements stay valid and keep their
// values across a sort.
//
//	l := list.From(3, 1, 2)
//	one := l.Front().Next()
//	patience.Sort(l)
//	// l: 1 2 3, and one.Value is still 1
package list
