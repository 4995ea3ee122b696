// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package billing

import (
	"github.com/shopspring/decimal"

	"phone_billing/internal/model"
	"phone_billing/internal/repo"
)

// MonthlyBreakdown partitions a subscriber's history by calendar
// month. The history is already ordered by the chronological key, so
// a single pass suffices: a summary is cut whenever the key changes.
//
// A subscriber without calls cannot exist — the directory creates
// nodes only together with their first call — so an empty history
// here is a broken caller and panics.
func (s *Service) MonthlyBreakdown(sub repo.Subscriber) []model.MonthlySummary {
	if sub.TotalCalls() == 0 {
		panic("billing: monthly breakdown for subscriber " + sub.Number() + " with no calls")
	}

	var out []model.MonthlySummary
	cur := -1 // chronological key of the summary being built

	for call := range sub.Calls() {
		if key := call.Datetime(); key != cur {
			out = append(out, model.MonthlySummary{
				Year:       call.Year,
				Month:      model.Month(call.Month),
				TotalPrice: decimal.Zero,
			})
			cur = key
		}

		m := &out[len(out)-1]
		m.Calls = append(m.Calls, call)
		m.CallCount++
		m.TotalDuration += call.Duration
		m.TotalPrice = m.TotalPrice.Add(call.Price)
	}

	return out
}
