// Package slist implements a generic singly linked list with O(1) head and
// tail operations and position-relative insertion and removal after a node.
//
// The list owns its nodes and their links; payload values stay owned by the
// caller and change hands exactly at insertion and removal. Instances are not
// synchronized; a single goroutine must own any given instance.
package slist

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when a payload is requested from an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrNoSuccessor is returned when removal is requested after the tail
	// node, which has no successor.
	ErrNoSuccessor = errors.New("no node after anchor")
)

// ReleaseFunc is the function applied by Destroy to every payload still held
// by the list.
type ReleaseFunc[T any] func(v T)

// Node is a single element of a List. It holds one payload value and the
// owning link to its successor.
type Node[T any] struct {
	Value T

	next *Node[T]
}

// Next returns the node following n, or nil if n is the last one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a singly linked list tracking both ends and its length. The zero
// value is a ready to use empty list.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// PushFront inserts v in a new node at the head of the list and returns that
// node. If the list was empty the node becomes the tail as well.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v, next: l.head}
	if l.tail == nil {
		l.tail = n
	}
	l.head = n
	l.length++
	return n
}

// PopFront removes the head node and returns its payload, transferring the
// payload's ownership back to the caller. It returns ErrEmpty if the list
// holds no nodes, leaving the list unchanged.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	v := n.Value
	// The detached node keeps no link into the chain and no payload
	// reference.
	*n = Node[T]{}
	return v, nil
}

// Append inserts v in a new node at the tail of the list and returns that
// node. Appending to an empty list is the same as PushFront.
func (l *List[T]) Append(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
	return n
}

// InsertAfter inserts v in a new node immediately following anchor and
// returns that node. If anchor is the tail, the new node becomes the tail.
//
// anchor must be a node currently belonging to this list; this is not
// validated, and handing in a node of another list or one already removed
// corrupts the list.
func (l *List[T]) InsertAfter(anchor *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, next: anchor.next}
	if anchor == l.tail {
		l.tail = n
	}
	anchor.next = n
	l.length++
	return n
}

// RemoveAfter removes the node immediately following anchor and returns its
// payload, transferring the payload's ownership back to the caller. If the
// removed node was the tail, anchor becomes the tail. It returns
// ErrNoSuccessor if anchor is the tail itself, leaving the list unchanged.
//
// anchor must be a node currently belonging to this list; this is not
// validated.
func (l *List[T]) RemoveAfter(anchor *Node[T]) (T, error) {
	if anchor == l.tail {
		var zero T
		return zero, ErrNoSuccessor
	}
	n := anchor.next
	anchor.next = n.next
	if n == l.tail {
		l.tail = anchor
	}
	l.length--
	v := n.Value
	*n = Node[T]{}
	return v, nil
}

// Enqueue appends v, reading the list as a FIFO queue.
func (l *List[T]) Enqueue(v T) *Node[T] {
	return l.Append(v)
}

// Dequeue removes and returns the payload at the head, reading the list as a
// FIFO queue. It returns ErrEmpty if the list holds no nodes.
func (l *List[T]) Dequeue() (T, error) {
	return l.PopFront()
}

// Destroy drains the list head-first, invoking release on every payload it
// still holds, and leaves it empty. release must not be nil. The drained
// list may be reused.
func (l *List[T]) Destroy(release ReleaseFunc[T]) {
	for l.Len() != 0 {
		v, _ := l.PopFront()
		release(v)
	}
}
