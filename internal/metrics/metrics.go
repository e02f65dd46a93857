// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncUserRegistered()
	IncLoginSucceeded()
	IncLoginFailed()

	// Record list cache metrics
	IncRecordListCacheHit()
	IncRecordListCacheMiss()

	// Record management metrics
	IncTransactionCreated()
	IncTransactionUpdated()
	IncTransactionDeleted()
	IncBudgetCreated()
	IncBudgetUpdated()
	IncBudgetDeleted()

	// Report metrics
	ObserveReportDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
