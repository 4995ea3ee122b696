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
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0.05", "0.05", false},
		{"1.80", "1.8", false},
		{"5", "5", false},
		{"0", "0", false},
		{".5", "0.5", false},
		{"", "", true},
		{"-0.05", "", true},
		{"1,80", "", true},
		{"1.2.3", "", true},
		{"1e2", "", true},
		{"abc", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Errorf("ParseRate(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestCallPrice(t *testing.T) {
	rate := decimal.RequireFromString("0.05")
	if got, want := CallPrice(rate, 120), decimal.RequireFromString("6"); !got.Equal(want) {
		t.Errorf("CallPrice = %s, want %s", got, want)
	}
	if got := CallPrice(rate, 0); !got.IsZero() {
		t.Errorf("CallPrice for zero duration = %s, want 0", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12", "12.00"},
		{"12.5", "12.50"},
		{"0.125", "0.13"},
		{"0", "0.00"},
	}

	for _, tc := range cases {
		if got := FormatPrice(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("FormatPrice(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCallDatetimeKey(t *testing.T) {
	c := Call{Year: 2024, Month: 3, Day: 31}
	if got := c.Datetime(); got != 202403 {
		t.Errorf("Datetime = %d, want 202403", got)
	}
}

func TestMonthString(t *testing.T) {
	cases := []struct {
		m    Month
		want string
	}{
		{January, "January"},
		{December, "December"},
		{Month(0), "unknown"},
		{Month(13), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("Month(%d).String() = %q, want %q", int(tc.m), got, tc.want)
		}
	}
}
