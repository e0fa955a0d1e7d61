package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/jobs-filter/pkg/core"
)

func TestParamsFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("state", " running ")
	v.Set("job_class", "ExampleJob")
	v.Set("queue_name", "mice")
	v.Set("cron_key", "frequent_cron")
	v.Set("finished_since", "1_hour_ago")
	v.Set("query", "DeadError")
	v.Set("limit", "25")
	v.Set("offset", "50")
	v.Set("order", "finished_at asc")

	p, err := ParamsFromValues(v)
	require.NoError(t, err)
	assert.Equal(t, Params{
		State:         "running",
		JobClass:      "ExampleJob",
		Queue:         "mice",
		CronKey:       "frequent_cron",
		FinishedSince: "1_hour_ago",
		Query:         "DeadError",
		Limit:         25,
		Offset:        50,
		Order:         Order{By: core.OrderByFinishedAt, Ascending: true},
	}, p)

	assert.Equal(t, p, mustParams(t, p.Values()))
}

func TestParamsFromValues_Empty(t *testing.T) {
	p, err := ParamsFromValues(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Params{}, p)
	assert.Empty(t, p.Values())
}

func TestParamsFromValues_Invalid(t *testing.T) {
	_, err := ParamsFromValues(url.Values{"limit": {"ten"}})
	assert.ErrorIs(t, err, core.ErrInvalidPagination)

	_, err = ParamsFromValues(url.Values{"offset": {"1.5"}})
	assert.ErrorIs(t, err, core.ErrInvalidPagination)

	_, err = ParamsFromValues(url.Values{"order": {"priority desc"}})
	assert.ErrorIs(t, err, core.ErrInvalidOrder)
}

func mustParams(t *testing.T, v url.Values) Params {
	t.Helper()
	p, err := ParamsFromValues(v)
	require.NoError(t, err)
	return p
}
