package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/pagination"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	to := time.Date(2026, 1, 11, 8, 30, 0, 0, time.UTC)
	in := Query{
		Search:    "  alice ",
		Filters:   map[string]string{"status": "All", "service": " OpenAI ", "user": ""},
		DateRange: &DateRange{To: &to},
		Sort:      SortSpec{Key: " at "},
	}
	n := in.Normalize()

	assert.Equal(t, "alice", n.Search)
	assert.Equal(t, map[string]string{"service": "OpenAI"}, n.Filters)
	assert.Equal(t, 1, n.Page)
	assert.Equal(t, pagination.DefaultPageSize, n.PageSize)
	assert.Equal(t, SortSpec{Key: "at", Direction: enums.SortAscending}, n.Sort)
	require.NotNil(t, n.DateRange)
	assert.Equal(t, time.Date(2026, 1, 11, 23, 59, 59, 999999999, time.UTC), *n.DateRange.To)

	assert.Equal(t, "All", in.Filters["status"], "normalize must not mutate the caller's map")
	assert.Equal(t, to, *in.DateRange.To)
}

func TestNormalizeDropsEmptyRange(t *testing.T) {
	n := Query{DateRange: &DateRange{}}.Normalize()
	assert.Nil(t, n.DateRange)
}

func TestLastDays(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	r := LastDays(now, 30)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), *r.From)
	assert.Equal(t, now, *r.To)
}

func TestLastDaysSharesCacheKeyWithinAMinute(t *testing.T) {
	a := time.Date(2026, 2, 14, 10, 0, 5, 123, time.UTC)
	b := time.Date(2026, 2, 14, 10, 0, 59, 999, time.UTC)
	qa := Query{DateRange: LastDays(a, 7)}.Normalize()
	qb := Query{DateRange: LastDays(b, 7)}.Normalize()
	assert.Equal(t, qa.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), qb.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV))
	assert.Equal(t, time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC), *qa.DateRange.From)

	qc := Query{DateRange: LastDays(b.Add(time.Second), 7)}.Normalize()
	assert.NotEqual(t, qa.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), qc.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV))
}

func TestResetOnChange(t *testing.T) {
	prev := Query{Search: "alice", Page: 3, PageSize: 5}

	same := ResetOnChange(prev, Query{Search: " alice ", Page: 3, PageSize: 5})
	assert.Equal(t, 3, same.Page, "equivalent queries keep the page")

	moved := ResetOnChange(prev, Query{Search: "alice", Page: 4, PageSize: 5})
	assert.Equal(t, 4, moved.Page, "page navigation is not a predicate change")

	searched := ResetOnChange(prev, Query{Search: "bob", Page: 3, PageSize: 5})
	assert.Equal(t, 1, searched.Page)

	resized := ResetOnChange(prev, Query{Search: "alice", Page: 3, PageSize: 10})
	assert.Equal(t, 1, resized.Page)

	filtered := ResetOnChange(prev, Query{Search: "alice", Page: 3, PageSize: 5, Filters: map[string]string{"status": "Failed"}})
	assert.Equal(t, 1, filtered.Page)

	allFilter := ResetOnChange(prev, Query{Search: "alice", Page: 3, PageSize: 5, Filters: map[string]string{"status": "All"}})
	assert.Equal(t, 3, allFilter.Page, "an All filter is equivalent to no filter")

	ranged := ResetOnChange(prev, Query{Search: "alice", Page: 3, PageSize: 5, DateRange: &DateRange{From: day(2026, 1, 1)}})
	assert.Equal(t, 1, ranged.Page)

	sorted := ResetOnChange(prev, Query{Search: "alice", Page: 3, PageSize: 5, Sort: SortSpec{Key: "at"}})
	assert.Equal(t, 1, sorted.Page)
}

func TestCacheKeyIgnoresPaging(t *testing.T) {
	a := Query{Search: "alice", Page: 1, PageSize: 5, Filters: map[string]string{"status": "Failed", "service": "OpenAI"}}
	b := Query{Search: " alice", Page: 7, PageSize: 50, Filters: map[string]string{"service": "OpenAI", "status": "Failed"}}
	assert.Equal(t, a.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), b.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV))

	assert.NotEqual(t, a.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), a.CacheKey(enums.DatasetLogs, enums.ExportFormatPDF))
	assert.NotEqual(t, a.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), a.CacheKey(enums.DatasetOrders, enums.ExportFormatCSV))
	assert.Len(t, a.CacheKey(enums.DatasetLogs, enums.ExportFormatCSV), 64)
}

func TestValidateQuery(t *testing.T) {
	schema := usageSchema()
	require.NoError(t, ValidateQuery(Query{Filters: map[string]string{"status": "Failed", "service": "All"}, Sort: SortSpec{Key: "cost"}}, schema))

	err := ValidateQuery(Query{
		Filters:   map[string]string{"status": "Broken", "region": "eu"},
		Sort:      SortSpec{Key: "nope"},
		DateRange: &DateRange{From: day(2026, 2, 1), To: day(2026, 1, 1)},
	}, schema)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "filter.status")
	assert.Contains(t, details, "filter.region")
	assert.Contains(t, details, "sort")
	assert.Contains(t, details, "to")
}

func TestSchemaValidate(t *testing.T) {
	require.NoError(t, usageSchema().Validate())

	broken := usageSchema()
	broken.Searchable = append(broken.Searchable, "missing")
	broken.DateField = "user"
	broken.GroupBy = "ghost"
	err := broken.Validate()
	require.Error(t, err)
	details := pkgerrors.As(err).Details().(map[string]string)
	assert.Equal(t, "unknown field", details["searchable.missing"])
	assert.Equal(t, "must be a time field", details["date_field"])
	assert.Equal(t, "unknown field", details["group_by"])
}
