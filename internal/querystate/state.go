// Package querystate converts raw job-listing query parameters into a
// canonical filter state and back into a canonical URL.
//
// The mapping is lossy on purpose: invalid values are dropped rather than
// rejected, and default values are never written to the URL.
package querystate

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

type Sort string

const (
	SortUpdatedDesc Sort = "updated_desc"
	SortCreatedDesc Sort = "created_desc"

	DefaultSort = SortUpdatedDesc
)

func (s Sort) Valid() bool {
	switch s {
	case SortUpdatedDesc, SortCreatedDesc:
		return true
	}
	return false
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

const (
	keySearch   = "search"
	keyFamilyID = "familyId"
	keySort     = "sort"
	keyPage     = "page"
)

// State is the canonical listing state. Zero values mean "absent".
type State struct {
	Search   string
	FamilyID string
	Sort     Sort
	Page     int
}

// Patch overrides the non-nil fields of a State. A pointer to "" clears a field.
type Patch struct {
	Search   *string
	FamilyID *string
	Sort     *Sort
	Page     *int
}

type Options struct {
	ResetPage bool
}

func Parse(values url.Values) State {
	return Canonicalize(State{
		Search:   first(values, keySearch),
		FamilyID: first(values, keyFamilyID),
		Sort:     Sort(strings.TrimSpace(first(values, keySort))),
		Page:     parsePage(first(values, keyPage)),
	})
}

// ParseQuery parses a raw query string; malformed pairs are skipped.
func ParseQuery(rawQuery string) State {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return Parse(values)
}

func Canonicalize(s State) State {
	s.Search = strings.TrimSpace(s.Search)
	s.FamilyID = strings.TrimSpace(s.FamilyID)
	if !s.Sort.Valid() {
		s.Sort = ""
	}
	// page 1 is the default and is represented as absent
	if s.Page < 2 {
		s.Page = 0
	}
	return s
}

func EffectiveSort(s State) Sort {
	if s.Sort.Valid() {
		return s.Sort
	}
	return DefaultSort
}

// EffectivePage returns the 1-based page the state points at.
func EffectivePage(s State) int {
	if s.Page < 1 {
		return 1
	}
	return s.Page
}

// ApplyPatch merges patch into current. With ResetPage the page is dropped
// entirely, which sends the user back to page 1 without a page parameter.
func ApplyPatch(current State, patch Patch, opts Options) State {
	next := current
	if patch.Search != nil {
		next.Search = *patch.Search
	}
	if patch.FamilyID != nil {
		next.FamilyID = *patch.FamilyID
	}
	if patch.Sort != nil {
		next.Sort = *patch.Sort
	}
	if patch.Page != nil {
		next.Page = *patch.Page
	}

	next = Canonicalize(next)
	if opts.ResetPage {
		next.Page = 0
	}
	return next
}

func Values(s State) url.Values {
	s = Canonicalize(s)

	v := url.Values{}
	if s.Search != "" {
		v.Set(keySearch, s.Search)
	}
	if s.FamilyID != "" {
		v.Set(keyFamilyID, s.FamilyID)
	}
	if s.Sort != "" && s.Sort != DefaultSort {
		v.Set(keySort, string(s.Sort))
	}
	if s.Page > 1 {
		v.Set(keyPage, strconv.Itoa(s.Page))
	}
	return v
}

func BuildHref(basePath string, s State) string {
	q := Values(s).Encode()
	if q == "" {
		return basePath
	}
	return basePath + "?" + q
}

// Pagination converts a 1-based page into offset and limit. A page past
// math.MaxInt/pageSize saturates the offset, so it selects nothing.
func Pagination(page, pageSize int) (skip, take int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt, pageSize
	}
	return (page - 1) * pageSize, pageSize
}

func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func first(values url.Values, key string) string {
	for _, v := range values[key] {
		return v
	}
	return ""
}

func parsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
