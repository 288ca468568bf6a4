package calculation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc stamps generated reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// reportIDFunc names generated reports.
var reportIDFunc = func() string { return uuid.NewString() }

// SetReportIDFunc overrides the report ID provider (use only in tests).
func SetReportIDFunc(f func() string) { reportIDFunc = f }

// seedFunc picks a Monte Carlo seed when none is configured.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }
