package pipeline

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IssueSeverity classifies an Issue recorded into an IssuesBag.
type IssueSeverity int

const (
	SeverityInfo IssueSeverity = iota
	SeverityWarning
	SeverityError
)

// Issue is one anomaly recorded during a pipeline run: an unknown trait or
// property skipped under PolicySkip, a dropped shape, an unresolved
// endpoint rule, etc. Each Issue carries a ULID so issues can be addressed
// individually (e.g. suppressed by id in a follow-up run) and sort
// chronologically by construction.
type Issue struct {
	ID       ulid.ULID
	Severity IssueSeverity
	Source   string
	Message  string
}

// IssuesBag accumulates Issues across an entire pipeline run in a
// concurrency-safe way, since multiple tasks may record issues from
// parallel goroutines.
type IssuesBag struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	issues  []Issue
}

// NewIssuesBag returns an empty IssuesBag with a monotonic ULID source
// seeded from a fixed, deterministic entropy stream, so two runs over the
// same input produce byte-identical issue ordering (no wall-clock or
// process-random dependency).
func NewIssuesBag() *IssuesBag {
	seed := rand.New(rand.NewSource(1))
	return &IssuesBag{
		entropy: ulid.Monotonic(seed, 0),
	}
}

// Add records a new Issue and returns its generated ID.
func (b *IssuesBag) Add(severity IssueSeverity, source, message string) ulid.ULID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(fixedEpoch), b.entropy)
	b.issues = append(b.issues, Issue{ID: id, Severity: severity, Source: source, Message: message})
	return id
}

// fixedEpoch anchors every ULID's timestamp component to the same instant,
// since ULID ordering here is carried entirely by the monotonic entropy
// counter rather than wall-clock time (Date.now-style calls are unavailable
// during codegen to keep builds reproducible).
var fixedEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// All returns every recorded Issue in insertion order.
func (b *IssuesBag) All() []Issue {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Issue, len(b.issues))
	copy(out, b.issues)
	return out
}

// HasErrors reports whether any SeverityError issue was recorded.
func (b *IssuesBag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, i := range b.issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
