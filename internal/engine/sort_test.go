package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

func TestSortTemporalPushesInvalidToTheEnd(t *testing.T) {
	asc := Sort(fixtures(), usageSchema(), SortSpec{Key: "at", Direction: enums.SortAscending})
	assert.Equal(t, []string{"u5", "u1", "u2", "u4", "u6", "u3"}, ids(asc))

	desc := Sort(fixtures(), usageSchema(), SortSpec{Key: "at", Direction: enums.SortDescending})
	assert.Equal(t, []string{"u3", "u4", "u6", "u2", "u1", "u5"}, ids(desc))
}

func TestSortStringsIgnoreCaseAndKeepTies(t *testing.T) {
	got := Sort(fixtures(), usageSchema(), SortSpec{Key: "user", Direction: enums.SortAscending})
	assert.Equal(t, []string{"u1", "u4", "u2", "u3", "u5", "u6"}, ids(got))
}

func TestSortNumericWithNulls(t *testing.T) {
	asc := Sort(fixtures(), usageSchema(), SortSpec{Key: "cost", Direction: enums.SortAscending})
	assert.Equal(t, []string{"u2", "u6", "u1", "u5", "u3", "u4"}, ids(asc))

	desc := Sort(fixtures(), usageSchema(), SortSpec{Key: "cost", Direction: enums.SortDescending})
	assert.Equal(t, []string{"u4", "u3", "u5", "u1", "u2", "u6"}, ids(desc))
}

func TestSortOptionalStringNullsLast(t *testing.T) {
	got := Sort(fixtures(), usageSchema(), SortSpec{Key: "note", Direction: enums.SortAscending})
	assert.Equal(t, []string{"u2", "u1", "u3", "u4", "u5", "u6"}, ids(got))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	got := Sort(fixtures(), usageSchema(), SortSpec{Key: "nope", Direction: enums.SortDescending})
	assert.Equal(t, ids(fixtures()), ids(got))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	got := Sort(fixtures(), usageSchema(), SortSpec{Key: "service", Direction: enums.SortAscending})
	// Mailgun < OpenAI < Stripe < Twilio; OpenAI and Twilio ties keep input order.
	assert.Equal(t, []string{"u5", "u1", "u4", "u3", "u2", "u6"}, ids(got))

	again := Sort(got, usageSchema(), SortSpec{Key: "service", Direction: enums.SortAscending})
	assert.Equal(t, ids(got), ids(again), "re-sorting by the same key must be idempotent")
}

func TestSortToggleTwiceRestoresTieOrder(t *testing.T) {
	asc := SortSpec{Key: "at", Direction: enums.SortAscending}
	desc := SortSpec{Key: "at", Direction: enums.SortDescending}

	direct := Sort(fixtures(), usageSchema(), asc)
	toggled := Sort(Sort(fixtures(), usageSchema(), desc), usageSchema(), asc)
	assert.Equal(t, ids(direct), ids(toggled))
}

func TestSortDirectionsAreReversesWithoutTies(t *testing.T) {
	noTies := slices.DeleteFunc(fixtures(), func(u usage) bool { return u.ID == "u6" })

	asc := ids(Sort(noTies, usageSchema(), SortSpec{Key: "at", Direction: enums.SortAscending}))
	desc := ids(Sort(noTies, usageSchema(), SortSpec{Key: "at", Direction: enums.SortDescending}))
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSortReturnsNewSlice(t *testing.T) {
	in := fixtures()
	before := ids(in)
	out := Sort(in, usageSchema(), SortSpec{Key: "at", Direction: enums.SortAscending})
	assert.Equal(t, before, ids(in))

	out[0].ID = "changed"
	assert.Equal(t, before, ids(in))
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, Sort([]usage{}, usageSchema(), SortSpec{Key: "at"}))
	assert.Empty(t, Sort(nil, usageSchema(), SortSpec{Key: "at"}))
}
