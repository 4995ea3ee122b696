// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseRate("0.05") => 0.05 per second, exact.
// Only digits and a single decimal point are accepted, so negative
// values and exponents are rejected before decimal parsing.
func ParseRate(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("rate: empty")
	}

	dots := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			dots++
			if dots > 1 {
				return decimal.Zero, fmt.Errorf("rate: bad %q", s)
			}
			continue
		}
		if c < '0' || c > '9' {
			return decimal.Zero, fmt.Errorf("rate: bad %q", s)
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate: bad %q: %w", s, err)
	}
	return d, nil
}

// CallPrice is duration seconds at the given per-second rate.
func CallPrice(rate decimal.Decimal, durationSec int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(durationSec)))
}

// FormatPrice renders a price with two decimals, the way invoices
// print it.
func FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(2)
}
