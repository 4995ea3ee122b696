// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

// Package report renders and writes the per-subscriber monthly
// artifacts: a CDR file with one line per call and an invoice file
// with the month's totals.
package report

import (
	"fmt"
	"strings"

	"phone_billing/internal/model"
)

// MaskCallee replaces the last three digits with '*' for CDR output.
// Numbers shorter than three digits cannot be masked.
func MaskCallee(callee string) (string, error) {
	if len(callee) < 3 {
		return "", fmt.Errorf("callee %q too short to mask", callee)
	}
	return callee[:len(callee)-3] + "***", nil
}

// FormatDuration renders seconds as H:MM:SS.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// CDRFilename is "<number>-<month>-<year>-cdr.txt".
func CDRFilename(number string, year int, month model.Month) string {
	return fmt.Sprintf("%s-%d-%d-cdr.txt", number, int(month), year)
}

// InvoiceFilename is "<number>-<month>-<year>.txt".
func InvoiceFilename(number string, year int, month model.Month) string {
	return fmt.Sprintf("%s-%d-%d.txt", number, int(month), year)
}

// CDRLines renders one line per call of the month:
// caller, masked callee, H:MM:SS, y-m-d.
func CDRLines(number string, m model.MonthlySummary) ([]string, error) {
	lines := make([]string, 0, len(m.Calls))

	for _, call := range m.Calls {
		masked, err := MaskCallee(call.Callee)
		if err != nil {
			return nil, err
		}

		lines = append(lines, fmt.Sprintf("%s, %s, %s, %d-%d-%d",
			number,
			masked,
			FormatDuration(call.Duration),
			call.Year, call.Month, call.Day,
		))
	}

	return lines, nil
}

// Invoice renders the month's bill text.
func Invoice(number string, m model.MonthlySummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Invoice for %s for Subscriber %s\n", m.Month, number)
	fmt.Fprintf(&b, "Calls: %d\n", m.CallCount)
	fmt.Fprintf(&b, "Duration: %s\n", FormatDuration(m.TotalDuration))
	fmt.Fprintf(&b, "Price: %s €", model.FormatPrice(m.TotalPrice))

	return b.String()
}
