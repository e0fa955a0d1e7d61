package ui

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/filter"
	"github.com/jdziat/jobs-filter/pkg/query"
)

// Handler creates an http.Handler serving the read-only jobs API:
//
//	GET /api/jobs        facets, filtered count and the record page
//	GET /api/jobs/:id    one record with its derived state
//	GET /api/facets      facets and filtered count without records
//	GET /api/healthz     store reachability and total record count
//	GET /metrics         Prometheus metrics
//
// Usage:
//
//	mux.Handle("/jobs/", http.StripPrefix("/jobs", ui.Handler(store)))
func Handler(store core.Store, opts ...Option) http.Handler {
	cfg := &config{
		logger: slog.Default(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}

	svc := &jobsService{
		store:   store,
		logger:  cfg.logger,
		clock:   cfg.clock,
		metrics: newMetrics(cfg.registry),
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/jobs", svc.listJobs)
	api.GET("/jobs/:id", svc.getJob)
	api.GET("/facets", svc.facets)
	api.GET("/healthz", svc.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{})))

	if cfg.middleware != nil {
		return cfg.middleware(r)
	}
	return r
}

// jobsService implements the API handlers.
type jobsService struct {
	store   core.Store
	logger  *slog.Logger
	clock   func() time.Time
	metrics *metrics
}

func (s *jobsService) listJobs(c *gin.Context) {
	f, ok := s.buildFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, f.Summary())
}

// facetsResponse is the summary without the record page.
type facetsResponse struct {
	Now           time.Time        `json:"now"`
	FilteredCount int64            `json:"filtered_count"`
	StateNames    []string         `json:"state_names"`
	States        map[string]int64 `json:"states"`
	Queues        map[string]int64 `json:"queues"`
	JobClasses    map[string]int64 `json:"job_classes"`
}

func (s *jobsService) facets(c *gin.Context) {
	f, ok := s.buildFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, facetsResponse{
		Now:           f.Now(),
		FilteredCount: f.FilteredCount(),
		StateNames:    f.StateNames(),
		States:        f.States(),
		Queues:        f.Queues(),
		JobClasses:    f.JobClasses(),
	})
}

type jobResponse struct {
	Job   *core.Job  `json:"job"`
	State core.State `json:"state"`
}

func (s *jobsService) getJob(c *gin.Context) {
	jobs, err := s.store.ListJobs(c.Request.Context(), core.RecordQuery{ID: c.Param("id")})
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, jobResponse{Job: jobs[0], State: jobs[0].State(s.clock())})
}

func (s *jobsService) health(c *gin.Context) {
	total, err := s.store.CountJobs(c.Request.Context(), core.RecordQuery{})
	if err != nil {
		s.fail(c, http.StatusServiceUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "records": total})
}

// buildFilter writes an error response and returns false when the filter cannot be built.
func (s *jobsService) buildFilter(c *gin.Context) (*filter.JobsFilter, bool) {
	start := time.Now()

	params, err := query.ParamsFromValues(c.Request.URL.Query())
	if err != nil {
		s.metrics.queries.WithLabelValues(stateLabel(""), "invalid").Inc()
		s.fail(c, http.StatusBadRequest, err)
		return nil, false
	}
	label := stateLabel(params.State)

	f, err := filter.New(c.Request.Context(), s.store, params,
		filter.WithClock(s.clock),
		filter.WithLogger(s.logger),
	)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		if isValidationError(err) {
			s.metrics.queries.WithLabelValues(label, "invalid").Inc()
			s.fail(c, http.StatusBadRequest, err)
		} else {
			s.metrics.queries.WithLabelValues(label, "error").Inc()
			s.fail(c, http.StatusInternalServerError, err)
		}
		return nil, false
	}

	s.metrics.queries.WithLabelValues(label, "ok").Inc()
	return f, true
}

func (s *jobsService) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "jobs api request failed",
			"path", c.Request.URL.Path,
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func isValidationError(err error) bool {
	for _, target := range []error{
		core.ErrInvalidFinishedSince,
		core.ErrInvalidOrder,
		core.ErrInvalidPagination,
		core.ErrQueryTooLong,
		core.ErrParamTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
