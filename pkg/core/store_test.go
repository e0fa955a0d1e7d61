package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordQuery_Narrowed(t *testing.T) {
	assert.False(t, RecordQuery{}.Narrowed())
	assert.False(t, RecordQuery{OrderBy: OrderByFinishedAt, Ascending: true, Limit: 10, Offset: 5}.Narrowed())

	assert.True(t, RecordQuery{ID: "abc"}.Narrowed())
	assert.True(t, RecordQuery{JobClass: "ExampleJob"}.Narrowed())
	assert.True(t, RecordQuery{Queue: "mice"}.Narrowed())
	assert.True(t, RecordQuery{CronKey: "example"}.Narrowed())
}
