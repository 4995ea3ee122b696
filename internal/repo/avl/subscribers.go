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

	"github.com/shopspring/decimal"

	"phone_billing/internal/model"
	"phone_billing/internal/repo"
)

type subscriberNode struct {
	number string
	calls  callList

	totalCalls    int
	totalDuration int
	totalPrice    decimal.Decimal

	height int
	left   *subscriberNode
	right  *subscriberNode
}

var _ repo.Subscriber = (*subscriberNode)(nil)

func (n *subscriberNode) Number() string              { return n.number }
func (n *subscriberNode) TotalCalls() int             { return n.totalCalls }
func (n *subscriberNode) TotalDuration() int          { return n.totalDuration }
func (n *subscriberNode) TotalPrice() decimal.Decimal { return n.totalPrice }
func (n *subscriberNode) Calls() iter.Seq[model.Call] { return n.calls.all() }

func (n *subscriberNode) CallsRange(start, end int) iter.Seq[model.Call] {
	return n.calls.slice(start, end)
}

// recomputeStats resets the cached totals and re-sums the whole
// history, so they can never drift from the stored calls.
func (n *subscriberNode) recomputeStats() {
	n.totalCalls = 0
	n.totalDuration = 0
	n.totalPrice = decimal.Zero

	for cur := n.calls.head; cur != nil; cur = cur.next {
		n.totalCalls++
		n.totalDuration += cur.call.Duration
		n.totalPrice = n.totalPrice.Add(cur.call.Price)
	}
}

// SubscriberTree is the subscriber directory: an AVL tree keyed by
// phone number, one call list per node.
type SubscriberTree struct {
	root *subscriberNode
	size int
}

var _ repo.SubscriberDirectory = (*SubscriberTree)(nil)

func NewSubscriberTree() *SubscriberTree {
	return &SubscriberTree{}
}

func (t *SubscriberTree) Len() int { return t.size }

// AddCall files the call under the given subscriber, creating the
// subscriber node on first contact. A repeated number only extends
// that node's history; the key set, and so the tree shape, stays
// unchanged.
func (t *SubscriberTree) AddCall(number string, call model.Call) error {
	root, created := addSubscriberCall(t.root, number, call)

	t.root = root
	if created {
		t.size++
	}

	return nil
}

func addSubscriberCall(n *subscriberNode, number string, call model.Call) (*subscriberNode, bool) {
	if n == nil {
		fresh := &subscriberNode{number: number, height: 1, totalPrice: decimal.Zero}
		fresh.calls.insert(call)
		fresh.recomputeStats()
		return fresh, true
	}

	var created bool

	switch {
	case number < n.number:
		n.left, created = addSubscriberCall(n.left, number, call)
	case number > n.number:
		n.right, created = addSubscriberCall(n.right, number, call)
	default:
		n.calls.insert(call)
		n.recomputeStats()
		return n, false
	}

	if !created {
		return n, false
	}

	return rebalanceSubscriber(n, number), true
}

func rebalanceSubscriber(n *subscriberNode, inserted string) *subscriberNode {
	n.height = 1 + max(subHeight(n.left), subHeight(n.right))

	balance := subBalance(n)

	// Imbalance is in the left child's left subtree
	if balance > 1 && inserted < n.left.number {
		return rotateSubRight(n)
	}

	// Imbalance is in the right child's right subtree
	if balance < -1 && inserted > n.right.number {
		return rotateSubLeft(n)
	}

	// Imbalance is in the left child's right subtree
	if balance > 1 && inserted > n.left.number {
		n.left = rotateSubLeft(n.left)
		return rotateSubRight(n)
	}

	// Imbalance is in the right child's left subtree
	if balance < -1 && inserted < n.right.number {
		n.right = rotateSubRight(n.right)
		return rotateSubLeft(n)
	}

	return n
}

func rotateSubRight(n *subscriberNode) *subscriberNode {
	left := n.left
	n.left = left.right
	left.right = n

	n.height = 1 + max(subHeight(n.left), subHeight(n.right))
	left.height = 1 + max(subHeight(left.left), subHeight(left.right))

	return left
}

func rotateSubLeft(n *subscriberNode) *subscriberNode {
	right := n.right
	n.right = right.left
	right.left = n

	n.height = 1 + max(subHeight(n.left), subHeight(n.right))
	right.height = 1 + max(subHeight(right.left), subHeight(right.right))

	return right
}

func subHeight(n *subscriberNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func subBalance(n *subscriberNode) int {
	if n == nil {
		return 0
	}
	return subHeight(n.left) - subHeight(n.right)
}

func (t *SubscriberTree) Get(number string) (repo.Subscriber, bool) {
	n := t.root
	for n != nil {
		switch {
		case number < n.number:
			n = n.left
		case number > n.number:
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// Traverse yields subscribers in the requested order. Pre-order is
// the reporting walk, in-order lists numbers ascending, post-order
// exists for teardown symmetry.
func (t *SubscriberTree) Traverse(order model.TraversalOrder) iter.Seq[repo.Subscriber] {
	return func(yield func(repo.Subscriber) bool) {
		walkSubscribers(t.root, order, yield)
	}
}

func walkSubscribers(n *subscriberNode, order model.TraversalOrder, yield func(repo.Subscriber) bool) bool {
	if n == nil {
		return true
	}

	switch order {
	case model.OrderPre:
		return yield(n) &&
			walkSubscribers(n.left, order, yield) &&
			walkSubscribers(n.right, order, yield)
	case model.OrderPost:
		return walkSubscribers(n.left, order, yield) &&
			walkSubscribers(n.right, order, yield) &&
			yield(n)
	default:
		return walkSubscribers(n.left, order, yield) &&
			yield(n) &&
			walkSubscribers(n.right, order, yield)
	}
}

// Release frees every node post-order, each call list before its
// owning node.
func (t *SubscriberTree) Release() {
	releaseSubscriber(t.root)
	t.root = nil
	t.size = 0
}

func releaseSubscriber(n *subscriberNode) {
	if n == nil {
		return
	}
	releaseSubscriber(n.left)
	releaseSubscriber(n.right)
	n.calls.release()
	n.left = nil
	n.right = nil
}
