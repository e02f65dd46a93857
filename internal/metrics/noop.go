package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncRecordListCacheHit is a no-op.
func (n *NoopRecorder) IncRecordListCacheHit() {}

// IncRecordListCacheMiss is a no-op.
func (n *NoopRecorder) IncRecordListCacheMiss() {}

// IncTransactionCreated is a no-op.
func (n *NoopRecorder) IncTransactionCreated() {}

// IncTransactionUpdated is a no-op.
func (n *NoopRecorder) IncTransactionUpdated() {}

// IncTransactionDeleted is a no-op.
func (n *NoopRecorder) IncTransactionDeleted() {}

// IncBudgetCreated is a no-op.
func (n *NoopRecorder) IncBudgetCreated() {}

// IncBudgetUpdated is a no-op.
func (n *NoopRecorder) IncBudgetUpdated() {}

// IncBudgetDeleted is a no-op.
func (n *NoopRecorder) IncBudgetDeleted() {}

// ObserveReportDuration is a no-op.
func (n *NoopRecorder) ObserveReportDuration(duration time.Duration) {}
