package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// Parameter keys accepted by ParamsFromValues.
const (
	KeyState         = "state"
	KeyJobClass      = "job_class"
	KeyQueueName     = "queue_name"
	KeyCronKey       = "cron_key"
	KeyFinishedSince = "finished_since"
	KeyQuery         = "query"
	KeyLimit         = "limit"
	KeyOffset        = "offset"
	KeyOrder         = "order"
)

// Params holds the optional filter inputs. Empty fields are inactive.
type Params struct {
	State         string
	JobClass      string
	Queue         string
	CronKey       string
	FinishedSince string // Relative token such as "1_hour_ago"
	Query         string // Free-text or job ID search

	Limit  int // <= 0 means unlimited; above security.MaxPageSize is core.ErrInvalidPagination
	Offset int
	Order  Order
}

// ParamsFromValues reads Params from a flat string map such as a URL query.
func ParamsFromValues(v url.Values) (Params, error) {
	p := Params{
		State:         strings.TrimSpace(v.Get(KeyState)),
		JobClass:      v.Get(KeyJobClass),
		Queue:         v.Get(KeyQueueName),
		CronKey:       v.Get(KeyCronKey),
		FinishedSince: strings.TrimSpace(v.Get(KeyFinishedSince)),
		Query:         v.Get(KeyQuery),
	}

	var err error
	if p.Limit, err = atoiParam(v, KeyLimit); err != nil {
		return Params{}, err
	}
	if p.Offset, err = atoiParam(v, KeyOffset); err != nil {
		return Params{}, err
	}
	if p.Order, err = ParseOrder(v.Get(KeyOrder)); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Values is the inverse of ParamsFromValues. Inactive fields are omitted.
func (p Params) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set(KeyState, p.State)
	set(KeyJobClass, p.JobClass)
	set(KeyQueueName, p.Queue)
	set(KeyCronKey, p.CronKey)
	set(KeyFinishedSince, p.FinishedSince)
	set(KeyQuery, p.Query)
	if p.Limit > 0 {
		v.Set(KeyLimit, strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set(KeyOffset, strconv.Itoa(p.Offset))
	}
	if !p.Order.IsDefault() {
		v.Set(KeyOrder, p.Order.String())
	}
	return v
}

func atoiParam(v url.Values, key string) (int, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", core.ErrInvalidPagination, key, raw)
	}
	return n, nil
}
