package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

func TestRunPaginatesSortedFilteredRecords(t *testing.T) {
	q := Query{
		Filters:  map[string]string{"status": "Success"},
		Sort:     SortSpec{Key: "cost", Direction: enums.SortAscending},
		Page:     2,
		PageSize: 3,
	}
	res := Run(fixtures(), usageSchema(), q)

	// Success records by cost: u6 (0.0075), u1 (0.02), u5 (0.10), u3 (1.50)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 2, res.Page.Page)
	assert.Equal(t, 4, res.TotalItems)
	assert.Equal(t, []string{"u3"}, ids(res.Items))

	total := Totals(res.Groups)
	assert.Equal(t, 4, total.TotalCount, "aggregates cover the filtered set, not the page")
	assert.Equal(t, 4, res.Summary.TotalRecords)
}

func TestRunClampsPageAfterFilterShrinksResults(t *testing.T) {
	res := Run(fixtures(), usageSchema(), Query{Search: "bob", Page: 5, PageSize: 2})
	assert.Equal(t, 1, res.Page.Page)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []string{"u2"}, ids(res.Items))
}

func TestRunEmptyResult(t *testing.T) {
	res := Run(fixtures(), usageSchema(), Query{Search: "nobody-matches-this"})
	assert.Equal(t, 1, res.TotalPages)
	assert.Empty(t, res.Items)
	assert.Equal(t, []string{"OpenAI", "Twilio", "Stripe", enums.GroupTotal}, keys(res.Groups))
}

func TestPrepareUsesDefaultSort(t *testing.T) {
	got := Prepare(fixtures(), usageSchema(), Query{})
	assert.Equal(t, []string{"u3", "u4", "u6", "u2", "u1", "u5"}, ids(got))
}
