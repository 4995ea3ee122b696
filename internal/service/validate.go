// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package billing

const (
	maxPhoneNumberLen = 15 // E.164
	maxRegionCodeLen  = 11
)

// validatePhoneNumber strips leading zeros and accepts digit-only
// numbers of up to 15 digits.
func validatePhoneNumber(s string) (string, bool) {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}

	if s == "" || len(s) > maxPhoneNumberLen {
		return "", false
	}

	if !allDigits(s) {
		return "", false
	}

	return s, true
}

// validateRegionCode strips leading zeros and a '+' international
// prefix, then accepts digit-only codes of up to 11 digits.
func validateRegionCode(s string) (string, bool) {
	for len(s) > 0 && (s[0] == '0' || s[0] == '+') {
		s = s[1:]
	}

	if s == "" || len(s) > maxRegionCodeLen {
		return "", false
	}

	if !allDigits(s) {
		return "", false
	}

	return s, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
