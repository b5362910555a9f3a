package mocks

import (
	"fmt"
	"sync"
)

// SequentialIDGenerator returns op-1, op-2, ... in call order.
type SequentialIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("op-%d", g.next)
}

// RecordedFailure is one MovementFailed call captured by StubRecorder.
type RecordedFailure struct {
	Operation string
	ErrorType string
}

// StubRecorder keeps every OperationRecorder call in memory.
type StubRecorder struct {
	mu sync.Mutex

	Applied         []string
	Failures        []RecordedFailure
	LastBalance     float64
	Reconciliations []bool
}

func NewStubRecorder() *StubRecorder {
	return &StubRecorder{}
}

func (r *StubRecorder) MovementApplied(operation string, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Applied = append(r.Applied, operation)
}

func (r *StubRecorder) MovementFailed(operation, errorType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, RecordedFailure{Operation: operation, ErrorType: errorType})
}

func (r *StubRecorder) BalanceChanged(_ string, balance float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastBalance = balance
}

func (r *StubRecorder) ReconciliationChecked(reconciled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reconciliations = append(r.Reconciliations, reconciled)
}
