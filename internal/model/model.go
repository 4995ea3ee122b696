// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package model

import "github.com/shopspring/decimal"

// RateEntry is one row of the rate catalog. Immutable after load.
type RateEntry struct {
	RegionCode string
	RegionName string
	Rate       decimal.Decimal // currency per second of call time
}

// Call is a single priced call. Callee is stored unmasked; masking
// happens only when CDR text is rendered.
type Call struct {
	Callee   string
	Duration int // seconds
	Price    decimal.Decimal

	Year  int
	Month int
	Day   int
}

// Datetime is the chronological sort key: year*100 + month.
// Day is not part of the key.
func (c Call) Datetime() int {
	return c.Year*100 + c.Month
}

// MonthlySummary covers all of one subscriber's calls within one
// calendar month, in history order.
type MonthlySummary struct {
	Year  int
	Month Month

	Calls []Call

	CallCount     int
	TotalDuration int
	TotalPrice    decimal.Decimal
}

// Totals are the run-wide counters. Anonymous calls count into Calls
// and Duration but never into Price.
type Totals struct {
	Calls    int64
	Duration int64
	Price    decimal.Decimal
}
