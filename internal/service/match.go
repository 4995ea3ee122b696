// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package billing

import "phone_billing/internal/model"

// matchLongestPrefix finds the rate whose region code is the longest
// prefix of the callee number. Every prefix length is tried through
// an exact catalog lookup and the last hit wins; there is no early
// exit, so a longer match always overrides a shorter one. Numbers
// top out at 15 digits, which bounds the quadratic scan.
func (s *Service) matchLongestPrefix(callee string) (model.RateEntry, bool) {
	var best model.RateEntry
	found := false

	for l := 1; l <= len(callee); l++ {
		if entry, ok := s.rates.Lookup(callee[:l]); ok {
			best = entry
			found = true
		}
	}

	return best, found
}
