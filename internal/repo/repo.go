// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package repo

import (
	"errors"
	"iter"

	"github.com/shopspring/decimal"

	"phone_billing/internal/model"
)

// ErrDuplicateRegionCode is returned when a region code is inserted
// twice. The catalog keeps the original entry.
var ErrDuplicateRegionCode = errors.New("duplicate region code")

// RateCatalog holds region-code rates. Built once during load,
// read-only afterwards.
type RateCatalog interface {
	Insert(entry model.RateEntry) error
	Lookup(regionCode string) (model.RateEntry, bool)
	Traverse(order model.TraversalOrder) iter.Seq[model.RateEntry]
	Len() int
	Release()
}

// Subscriber is a read view of one subscriber and their call history.
// Totals are kept consistent with the stored history by the directory.
type Subscriber interface {
	Number() string
	TotalCalls() int
	TotalDuration() int
	TotalPrice() decimal.Decimal

	// Calls yields the history in chronological-key order.
	Calls() iter.Seq[model.Call]
	// CallsRange yields positions [start, end] of the history.
	CallsRange(start, end int) iter.Seq[model.Call]
}

// SubscriberDirectory maps subscriber numbers to their call
// histories. AddCall creates the subscriber on first sight.
type SubscriberDirectory interface {
	AddCall(number string, call model.Call) error
	Get(number string) (Subscriber, bool)
	Traverse(order model.TraversalOrder) iter.Seq[Subscriber]
	Len() int
	Release()
}
