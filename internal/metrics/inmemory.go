package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered       uint64 `json:"users_registered"`
	LoginsSucceeded       uint64 `json:"logins_succeeded"`
	LoginsFailed          uint64 `json:"logins_failed"`
	RecordListCacheHits   uint64 `json:"record_list_cache_hits"`
	RecordListCacheMisses uint64 `json:"record_list_cache_misses"`
	TransactionsCreated   uint64 `json:"transactions_created"`
	TransactionsUpdated   uint64 `json:"transactions_updated"`
	TransactionsDeleted   uint64 `json:"transactions_deleted"`
	BudgetsCreated        uint64 `json:"budgets_created"`
	BudgetsUpdated        uint64 `json:"budgets_updated"`
	BudgetsDeleted        uint64 `json:"budgets_deleted"`
	ReportCount           uint64 `json:"report_count"`
	ReportDurationTotalNs int64  `json:"report_duration_total_ns"`
}

// InMemoryRecorder stores metrics in memory behind atomic counters.
type InMemoryRecorder struct {
	usersRegistered       uint64
	loginsSucceeded       uint64
	loginsFailed          uint64
	recordListCacheHits   uint64
	recordListCacheMisses uint64
	transactionsCreated   uint64
	transactionsUpdated   uint64
	transactionsDeleted   uint64
	budgetsCreated        uint64
	budgetsUpdated        uint64
	budgetsDeleted        uint64
	reportCount           uint64
	reportDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:       atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded:       atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:          atomic.LoadUint64(&m.loginsFailed),
		RecordListCacheHits:   atomic.LoadUint64(&m.recordListCacheHits),
		RecordListCacheMisses: atomic.LoadUint64(&m.recordListCacheMisses),
		TransactionsCreated:   atomic.LoadUint64(&m.transactionsCreated),
		TransactionsUpdated:   atomic.LoadUint64(&m.transactionsUpdated),
		TransactionsDeleted:   atomic.LoadUint64(&m.transactionsDeleted),
		BudgetsCreated:        atomic.LoadUint64(&m.budgetsCreated),
		BudgetsUpdated:        atomic.LoadUint64(&m.budgetsUpdated),
		BudgetsDeleted:        atomic.LoadUint64(&m.budgetsDeleted),
		ReportCount:           atomic.LoadUint64(&m.reportCount),
		ReportDurationTotalNs: atomic.LoadInt64(&m.reportDurationTotalNs),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncRecordListCacheHit increments the list cache hit counter.
func (m *InMemoryRecorder) IncRecordListCacheHit() {
	atomic.AddUint64(&m.recordListCacheHits, 1)
}

// IncRecordListCacheMiss increments the list cache miss counter.
func (m *InMemoryRecorder) IncRecordListCacheMiss() {
	atomic.AddUint64(&m.recordListCacheMisses, 1)
}

// IncTransactionCreated increments the transaction created counter.
func (m *InMemoryRecorder) IncTransactionCreated() {
	atomic.AddUint64(&m.transactionsCreated, 1)
}

// IncTransactionUpdated increments the transaction updated counter.
func (m *InMemoryRecorder) IncTransactionUpdated() {
	atomic.AddUint64(&m.transactionsUpdated, 1)
}

// IncTransactionDeleted increments the transaction deleted counter.
func (m *InMemoryRecorder) IncTransactionDeleted() {
	atomic.AddUint64(&m.transactionsDeleted, 1)
}

// IncBudgetCreated increments the budget created counter.
func (m *InMemoryRecorder) IncBudgetCreated() {
	atomic.AddUint64(&m.budgetsCreated, 1)
}

// IncBudgetUpdated increments the budget updated counter.
func (m *InMemoryRecorder) IncBudgetUpdated() {
	atomic.AddUint64(&m.budgetsUpdated, 1)
}

// IncBudgetDeleted increments the budget deleted counter.
func (m *InMemoryRecorder) IncBudgetDeleted() {
	atomic.AddUint64(&m.budgetsDeleted, 1)
}

// ObserveReportDuration records a report build duration.
func (m *InMemoryRecorder) ObserveReportDuration(duration time.Duration) {
	atomic.AddUint64(&m.reportCount, 1)
	atomic.AddInt64(&m.reportDurationTotalNs, duration.Nanoseconds())
}
