package query

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// Search matches records by job ID or by text in their job class and error.
// The two modes are exclusive: Resolve switches to ID mode when the query is
// the ID of a record in the searched set, and text mode applies otherwise.
type Search struct {
	raw    string
	id     uuid.UUID
	isUUID bool
	term   string
	byID   bool
}

// NewSearch prepares q for matching in text mode. q should already be sanitized.
func NewSearch(q string) *Search {
	s := &Search{raw: q, term: strings.ToLower(q)}
	if id, err := uuid.Parse(q); err == nil {
		s.id = id
		s.isUUID = true
	}
	return s
}

// Resolve selects ID mode if any of jobs has the query as its ID, and
// text mode otherwise. It must run before the search is shared.
func (s *Search) Resolve(jobs []*core.Job) {
	s.byID = false
	for _, j := range jobs {
		if s.MatchID(j) {
			s.byID = true
			return
		}
	}
}

// ByID reports whether the search resolved to ID mode.
func (s *Search) ByID() bool { return s.byID }

// Match reports whether job matches in the resolved mode.
func (s *Search) Match(job *core.Job) bool {
	if s.byID {
		return s.MatchID(job)
	}
	return s.MatchText(job)
}

// MatchID reports whether the query is job's ID. UUIDs compare in canonical form.
func (s *Search) MatchID(job *core.Job) bool {
	if job.ID == s.raw {
		return true
	}
	if !s.isUUID {
		return false
	}
	id, err := uuid.Parse(job.ID)
	return err == nil && id == s.id
}

// MatchText reports whether the query is a case-insensitive substring of job's
// class or error. A short query matches a namespaced value such as
// "Billing::DeadError"; a namespaced query must match in full.
func (s *Search) MatchText(job *core.Job) bool {
	for _, field := range []string{job.JobClass, job.Error} {
		if field != "" && strings.Contains(strings.ToLower(field), s.term) {
			return true
		}
	}
	return false
}
