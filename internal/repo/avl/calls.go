// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package avl

import (
	"iter"

	"phone_billing/internal/model"
)

type callNode struct {
	call model.Call
	prev *callNode
	next *callNode
}

// callList is a doubly linked call history, non-decreasing by the
// chronological key (year*100+month). Insertion among equal keys is
// FIFO: a new call lands after every existing call of the same month.
type callList struct {
	head *callNode
	tail *callNode
	size int
}

func (l *callList) insert(call model.Call) {
	n := &callNode{call: call}
	l.size++

	if l.head == nil {
		l.head = n
		l.tail = n
		return
	}

	key := call.Datetime()

	if key < l.head.call.Datetime() {
		n.next = l.head
		l.head.prev = n
		l.head = n
		return
	}

	for cur := l.head; cur != nil; cur = cur.next {
		if cur.call.Datetime() > key {
			// cur is the first strictly later call
			n.prev = cur.prev
			n.next = cur
			cur.prev.next = n
			cur.prev = n
			return
		}
	}

	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

func (l *callList) all() iter.Seq[model.Call] {
	return func(yield func(model.Call) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.call) {
				return
			}
		}
	}
}

// slice yields positions [start, end], both inclusive, counting from
// the head. An inverted range yields nothing.
func (l *callList) slice(start, end int) iter.Seq[model.Call] {
	return func(yield func(model.Call) bool) {
		if start > end {
			return
		}

		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if i > end {
				return
			}
			if i >= start {
				if !yield(cur.call) {
					return
				}
			}
			i++
		}
	}
}

func (l *callList) release() {
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.prev = nil
		cur.next = nil
		cur = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}
