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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"phone_billing/internal/model"
	"phone_billing/internal/repo"
)

// rates csv: region_code,region_name,rate
// calls csv: caller,callee,duration_sec,datetime("2006-01-02 15:04:05")

// LoadRates reads the rate csv and fills the catalog. Malformed rows
// and duplicate region codes are logged and skipped; the row number
// in the log is 1-based.
func (s *Service) LoadRates(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields := make([]string, 3)

	line := 0
	for sc.Scan() {
		line++

		if err := ctx.Err(); err != nil {
			return err
		}

		row := strings.TrimSpace(sc.Text())
		if row == "" {
			continue
		}

		if !splitExact(row, ',', fields) {
			s.log.Warn().Int("line", line).Msg("rates: expected 3 fields, row skipped")
			continue
		}

		code, ok := validateRegionCode(fields[0])
		if !ok {
			s.log.Warn().Int("line", line).Str("region_code", fields[0]).Msg("rates: invalid region code, row skipped")
			continue
		}

		rate, err := model.ParseRate(fields[2])
		if err != nil {
			s.log.Warn().Int("line", line).Err(err).Msg("rates: invalid rate, row skipped")
			continue
		}

		entry := model.RateEntry{
			RegionCode: code,
			RegionName: fields[1],
			Rate:       rate,
		}

		if err := s.rates.Insert(entry); err != nil {
			if errors.Is(err, repo.ErrDuplicateRegionCode) {
				s.log.Warn().Int("line", line).Str("region_code", code).Msg("rates: duplicate region code, row skipped")
				continue
			}
			return fmt.Errorf("rates line %d: %w", line, err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read rates: %w", err)
	}

	s.log.Info().Int("entries", s.rates.Len()).Msg("rate catalog loaded")
	return nil
}

// LoadCalls reads the call csv and files every valid call under its
// caller. A caller of "Anonymous" is counted into the run totals
// (except price) and never enters the directory. Malformed rows are
// logged and skipped.
func (s *Service) LoadCalls(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fields := make([]string, 4)

	line := 0
	for sc.Scan() {
		line++

		if err := ctx.Err(); err != nil {
			return err
		}

		row := strings.TrimSpace(sc.Text())
		if row == "" {
			continue
		}

		if !splitExact(row, ',', fields) {
			s.log.Warn().Int("line", line).Msg("calls: expected 4 fields, row skipped")
			continue
		}

		duration, err := atoiFast(fields[2])
		if err != nil {
			s.log.Warn().Int("line", line).Err(err).Msg("calls: invalid duration, row skipped")
			continue
		}

		if fields[0] == anonymousCaller {
			// Counted, never billed.
			s.totals.Calls++
			s.totals.Duration += int64(duration)
			continue
		}

		caller, ok := validatePhoneNumber(fields[0])
		if !ok {
			s.log.Warn().Int("line", line).Str("caller", fields[0]).Msg("calls: invalid caller number, row skipped")
			continue
		}

		callee, ok := validatePhoneNumber(fields[1])
		if !ok {
			s.log.Warn().Int("line", line).Str("callee", fields[1]).Msg("calls: invalid callee number, row skipped")
			continue
		}

		at, err := time.ParseInLocation(callLayout, fields[3], s.loc)
		if err != nil {
			s.log.Warn().Int("line", line).Str("datetime", fields[3]).Msg("calls: invalid datetime, row skipped")
			continue
		}

		if at.Year() < s.minYear || at.Year() > s.maxYear {
			s.log.Warn().Int("line", line).Int("year", at.Year()).Msg("calls: implausible year, row skipped")
			continue
		}

		if err := s.recordCall(caller, callee, duration, at); err != nil {
			return fmt.Errorf("calls line %d: %w", line, err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read calls: %w", err)
	}

	s.log.Info().
		Int("subscribers", s.subs.Len()).
		Int64("calls", s.totals.Calls).
		Msg("call records loaded")
	return nil
}

// recordCall prices one validated call and files it in the
// directory, folding it into the run totals.
func (s *Service) recordCall(caller, callee string, duration int, at time.Time) error {
	call := model.Call{
		Callee:   callee,
		Duration: duration,
		Year:     at.Year(),
		Month:    int(at.Month()),
		Day:      at.Day(),
	}

	if entry, ok := s.matchLongestPrefix(callee); ok {
		call.Price = model.CallPrice(entry.Rate, duration)
	} else {
		// Degraded pricing, not a failure.
		s.log.Warn().Str("callee", callee).Msg("no rate match, price set to zero")
		call.Price = decimal.Zero
	}

	if err := s.subs.AddCall(caller, call); err != nil {
		return fmt.Errorf("add call for %s: %w", caller, err)
	}

	s.totals.Calls++
	s.totals.Duration += int64(duration)
	s.totals.Price = s.totals.Price.Add(call.Price)

	return nil
}
