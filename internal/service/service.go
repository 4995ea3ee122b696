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
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"phone_billing/internal/model"
	"phone_billing/internal/repo"
)

const (
	callLayout = "2006-01-02 15:04:05"

	// anonymousCaller marks records that are counted but never billed.
	anonymousCaller = "Anonymous"
)

type Service struct {
	rates repo.RateCatalog
	subs  repo.SubscriberDirectory
	loc   *time.Location
	log   zerolog.Logger

	// plausibility window for call dates
	minYear int
	maxYear int

	totals model.Totals
}

func New(
	rates repo.RateCatalog,
	subs repo.SubscriberDirectory,
	location *time.Location,
	log zerolog.Logger,
) *Service {
	return &Service{
		rates: rates,
		subs:  subs,
		loc:   location,
		log:   log,

		minYear: 1876, // no calls before the telephone
		maxYear: time.Now().Year(),

		totals: model.Totals{Price: decimal.Zero},
	}
}

// Totals returns the run-wide counters accumulated so far.
func (s *Service) Totals() model.Totals {
	return s.totals
}

// Subscribers exposes the loaded directory for reporting walks.
func (s *Service) Subscribers() repo.SubscriberDirectory {
	return s.subs
}

// Rates exposes the loaded catalog.
func (s *Service) Rates() repo.RateCatalog {
	return s.rates
}
