package querystate

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func sortPtr(s Sort) *Sort    { return &s }

func TestParse_TrimsAndDropsInvalid(t *testing.T) {
	s := Parse(url.Values{
		"search":   {"  engineer  "},
		"familyId": {"   "},
		"sort":     {"bogus"},
		"page":     {"abc"},
		"unknown":  {"x"},
	})

	assert.Equal(t, State{Search: "engineer"}, s)
}

func TestParse_InvalidSortAndPageAreAbsent(t *testing.T) {
	for _, page := range []string{"abc", "0", "-3", "2.5", ""} {
		s := Parse(url.Values{"sort": {"bogus"}, "page": {page}})
		assert.Equal(t, Sort(""), s.Sort, "page=%q", page)
		assert.Equal(t, 0, s.Page, "page=%q", page)
	}
}

func TestParse_TakesFirstOfRepeatedValues(t *testing.T) {
	s := Parse(url.Values{"page": {"3", "9"}, "sort": {"created_desc", "updated_desc"}})
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, SortCreatedDesc, s.Sort)
}

func TestEffectiveSort(t *testing.T) {
	assert.Equal(t, SortUpdatedDesc, EffectiveSort(State{}))
	assert.Equal(t, SortCreatedDesc, EffectiveSort(State{Sort: SortCreatedDesc}))
	assert.Equal(t, SortUpdatedDesc, EffectiveSort(State{Sort: "nope"}))
}

func TestBuildHref_OmitsDefaults(t *testing.T) {
	href := BuildHref("/jobs", State{Search: "go", Sort: SortUpdatedDesc, Page: 1})
	assert.NotContains(t, href, "sort=")
	assert.NotContains(t, href, "page=")
	assert.Equal(t, "/jobs?search=go", href)
}

func TestBuildHref_EmptyStateHasNoQuestionMark(t *testing.T) {
	assert.Equal(t, "/jobs", BuildHref("/jobs", State{}))
	assert.Equal(t, "/jobs", BuildHref("/jobs", Parse(url.Values{})))
}

func TestBuildHref_NonDefaults(t *testing.T) {
	href := BuildHref("/jobs", State{Search: "data engineer", FamilyID: "fam-1", Sort: SortCreatedDesc, Page: 4})
	assert.Equal(t, "/jobs?familyId=fam-1&page=4&search=data+engineer&sort=created_desc", href)
}

func TestRoundTrip_ParseOfHrefEqualsCanonical(t *testing.T) {
	states := []State{
		{},
		{Search: "  backend  "},
		{FamilyID: "abc", Page: 2},
		{Search: "go & rust", Sort: SortCreatedDesc, Page: 7},
		{Page: 1},
		{Page: -4, Sort: "weird"},
		{Search: "日本語", FamilyID: " f ", Sort: SortCreatedDesc},
	}
	for _, s := range states {
		want := Canonicalize(s)
		href := BuildHref("/jobs", s)

		var raw string
		if i := strings.Index(href, "?"); i >= 0 {
			raw = href[i+1:]
		}
		got := ParseQuery(raw)
		require.Equal(t, want, got, "href=%s", href)
	}
}

func TestRoundTrip_DefaultSortIsOmitted(t *testing.T) {
	s := State{Search: "go", Sort: SortUpdatedDesc}
	got := ParseQuery(strings.TrimPrefix(BuildHref("", s), "?"))

	assert.Equal(t, Sort(""), got.Sort)
	assert.Equal(t, EffectiveSort(Canonicalize(s)), EffectiveSort(got))
}

func TestApplyPatch_ResetPageAlwaysDropsPage(t *testing.T) {
	current := State{Search: "go", Page: 5}

	for _, p := range []Patch{
		{},
		{Search: strPtr("rust")},
		{Page: intPtr(9)},
		{Sort: sortPtr(SortCreatedDesc)},
	} {
		next := ApplyPatch(current, p, Options{ResetPage: true})
		assert.Equal(t, 0, next.Page)
		assert.NotContains(t, BuildHref("/jobs", next), "page=")
	}
}

func TestApplyPatch_MergesAndCanonicalizes(t *testing.T) {
	current := State{Search: "go", FamilyID: "f1", Page: 3}

	next := ApplyPatch(current, Patch{Search: strPtr("  "), Sort: sortPtr("bad")}, Options{})
	assert.Equal(t, State{FamilyID: "f1", Page: 3}, next)

	next = ApplyPatch(current, Patch{Page: intPtr(4)}, Options{})
	assert.Equal(t, 4, next.Page)
	assert.Equal(t, "go", next.Search)
}

func TestPagination(t *testing.T) {
	skip, take := Pagination(3, 5)
	assert.Equal(t, 10, skip)
	assert.Equal(t, 5, take)
	assert.Equal(t, 9, TotalPages(42, 5))

	skip, take = Pagination(0, 0)
	assert.Equal(t, 0, skip)
	assert.Equal(t, DefaultPageSize, take)
	assert.Equal(t, 0, TotalPages(0, 20))
}

func TestPagination_SaturatesHugePage(t *testing.T) {
	s := Parse(url.Values{"page": {"461168601842738792"}})
	assert.Equal(t, 461168601842738792, s.Page)

	skip, take := Pagination(s.Page, 20)
	assert.Equal(t, math.MaxInt, skip)
	assert.Equal(t, 20, take)

	skip, _ = Pagination(math.MaxInt, 1)
	assert.Equal(t, math.MaxInt-1, skip)
}
