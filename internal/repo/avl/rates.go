// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

// Package avl holds the in-memory billing structures: an AVL tree of
// rates keyed by region code, and an AVL tree of subscribers keyed by
// phone number where every node owns an ordered call list.
//
// Nodes carry no parent pointers. Insertion is recursive and each
// level reattaches the (possibly rotated) subtree root returned by
// the level below.
package avl

import (
	"iter"

	"phone_billing/internal/model"
	"phone_billing/internal/repo"
)

type rateNode struct {
	entry  model.RateEntry
	height int
	left   *rateNode
	right  *rateNode
}

// RateTree is the rate catalog. Keys compare lexicographically, which
// keeps prefix lookups cheap for digit-only region codes.
type RateTree struct {
	root *rateNode
	size int
}

var _ repo.RateCatalog = (*RateTree)(nil)

func NewRateTree() *RateTree {
	return &RateTree{}
}

func (t *RateTree) Len() int { return t.size }

// Insert adds an entry with a not-yet-present region code. On
// repo.ErrDuplicateRegionCode the tree is unchanged.
func (t *RateTree) Insert(entry model.RateEntry) error {
	root, err := insertRate(t.root, entry)
	if err != nil {
		return err
	}

	t.root = root
	t.size++

	return nil
}

func insertRate(n *rateNode, entry model.RateEntry) (*rateNode, error) {
	if n == nil {
		return &rateNode{entry: entry, height: 1}, nil
	}

	switch {
	case entry.RegionCode < n.entry.RegionCode:
		left, err := insertRate(n.left, entry)
		if err != nil {
			return nil, err
		}
		n.left = left
	case entry.RegionCode > n.entry.RegionCode:
		right, err := insertRate(n.right, entry)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		return nil, repo.ErrDuplicateRegionCode
	}

	return rebalanceRate(n, entry.RegionCode), nil
}

// rebalanceRate refreshes n's height and applies at most one single
// or double rotation, then returns the subtree root.
func rebalanceRate(n *rateNode, inserted string) *rateNode {
	n.height = 1 + max(rateHeight(n.left), rateHeight(n.right))

	balance := rateBalance(n)

	// Imbalance is in the left child's left subtree
	if balance > 1 && inserted < n.left.entry.RegionCode {
		return rotateRateRight(n)
	}

	// Imbalance is in the right child's right subtree
	if balance < -1 && inserted > n.right.entry.RegionCode {
		return rotateRateLeft(n)
	}

	// Imbalance is in the left child's right subtree
	if balance > 1 && inserted > n.left.entry.RegionCode {
		n.left = rotateRateLeft(n.left)
		return rotateRateRight(n)
	}

	// Imbalance is in the right child's left subtree
	if balance < -1 && inserted < n.right.entry.RegionCode {
		n.right = rotateRateRight(n.right)
		return rotateRateLeft(n)
	}

	return n
}

func rotateRateRight(n *rateNode) *rateNode {
	left := n.left
	n.left = left.right
	left.right = n

	n.height = 1 + max(rateHeight(n.left), rateHeight(n.right))
	left.height = 1 + max(rateHeight(left.left), rateHeight(left.right))

	return left
}

func rotateRateLeft(n *rateNode) *rateNode {
	right := n.right
	n.right = right.left
	right.left = n

	n.height = 1 + max(rateHeight(n.left), rateHeight(n.right))
	right.height = 1 + max(rateHeight(right.left), rateHeight(right.right))

	return right
}

func rateHeight(n *rateNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func rateBalance(n *rateNode) int {
	if n == nil {
		return 0
	}
	return rateHeight(n.left) - rateHeight(n.right)
}

// Lookup is an exact-match search by region code.
func (t *RateTree) Lookup(regionCode string) (model.RateEntry, bool) {
	n := t.root
	for n != nil {
		switch {
		case regionCode < n.entry.RegionCode:
			n = n.left
		case regionCode > n.entry.RegionCode:
			n = n.right
		default:
			return n.entry, true
		}
	}
	return model.RateEntry{}, false
}

// Traverse yields entries in the requested order. In-order gives
// ascending region codes. The sequence is restartable.
func (t *RateTree) Traverse(order model.TraversalOrder) iter.Seq[model.RateEntry] {
	return func(yield func(model.RateEntry) bool) {
		walkRates(t.root, order, yield)
	}
}

func walkRates(n *rateNode, order model.TraversalOrder, yield func(model.RateEntry) bool) bool {
	if n == nil {
		return true
	}

	switch order {
	case model.OrderPre:
		return yield(n.entry) &&
			walkRates(n.left, order, yield) &&
			walkRates(n.right, order, yield)
	case model.OrderPost:
		return walkRates(n.left, order, yield) &&
			walkRates(n.right, order, yield) &&
			yield(n.entry)
	default:
		return walkRates(n.left, order, yield) &&
			yield(n.entry) &&
			walkRates(n.right, order, yield)
	}
}

// Release tears the tree down post-order. The catalog is empty
// afterwards.
func (t *RateTree) Release() {
	releaseRate(t.root)
	t.root = nil
	t.size = 0
}

func releaseRate(n *rateNode) {
	if n == nil {
		return
	}
	releaseRate(n.left)
	releaseRate(n.right)
	n.left = nil
	n.right = nil
}
