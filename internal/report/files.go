// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"phone_billing/internal/model"
)

// Writer drops the monthly artifacts into a directory.
type Writer struct {
	dir string
	log zerolog.Logger
}

func NewWriter(dir string, log zerolog.Logger) *Writer {
	return &Writer{dir: dir, log: log}
}

// WriteSubscriber writes one CDR file and one invoice file per month
// of the subscriber's history.
func (w *Writer) WriteSubscriber(number string, months []model.MonthlySummary) error {
	for _, m := range months {
		lines, err := CDRLines(number, m)
		if err != nil {
			return fmt.Errorf("cdr for %s %d-%d: %w", number, m.Year, int(m.Month), err)
		}

		cdrPath := filepath.Join(w.dir, CDRFilename(number, m.Year, m.Month))
		if err := os.WriteFile(cdrPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cdrPath, err)
		}

		billPath := filepath.Join(w.dir, InvoiceFilename(number, m.Year, m.Month))
		if err := os.WriteFile(billPath, []byte(Invoice(number, m)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", billPath, err)
		}

		w.log.Debug().
			Str("subscriber", number).
			Int("year", m.Year).
			Str("month", m.Month.String()).
			Int("calls", m.CallCount).
			Msg("monthly report written")
	}

	return nil
}
