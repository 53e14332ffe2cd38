package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKey_EquivalentQueriesShareKey(t *testing.T) {
	a := RenderKey("/api/v1/job-postings", "search=%20go%20&page=1&sort=updated_desc", "en")
	b := RenderKey("/api/v1/job-postings", "search=go", "en")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "render:/api/v1/job-postings:"))

	assert.NotEqual(t, a, RenderKey("/api/v1/job-postings", "search=go", "id"))
	assert.NotEqual(t, a, RenderKey("/api/v1/job-postings", "search=go&page=2", "en"))
}

func TestRenderPattern_EscapesGlob(t *testing.T) {
	assert.Equal(t, `render:/a\*b:*`, RenderPattern("/a*b"))
}

type recordingStore struct {
	patterns []string
	err      error
}

func (s *recordingStore) DeleteByPattern(_ context.Context, pattern string) error {
	s.patterns = append(s.patterns, pattern)
	return s.err
}

type recordingNotifier struct {
	paths [][]string
}

func (n *recordingNotifier) NotifyPathsRevalidated(paths []string) {
	n.paths = append(n.paths, paths)
}

func TestRevalidator_DedupesAndNotifies(t *testing.T) {
	store := &recordingStore{}
	notifier := &recordingNotifier{}
	r := NewRevalidator(store, notifier, nil)

	err := r.RevalidatePaths(context.Background(), "/a", " /a ", "", "/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"render:/a:*", "render:/b:*"}, store.patterns)
	assert.Equal(t, [][]string{{"/a", "/b"}}, notifier.paths)
}

func TestRevalidator_StoreErrorStillNotifies(t *testing.T) {
	store := &recordingStore{err: errors.New("down")}
	notifier := &recordingNotifier{}
	r := NewRevalidator(store, notifier, nil)

	err := r.RevalidatePaths(context.Background(), "/a")
	assert.Error(t, err)
	assert.Len(t, notifier.paths, 1)
}

func TestRedis_UnavailableBypasses(t *testing.T) {
	r := Wrap(nil, time.Minute, nil)
	ctx := context.Background()

	var out RenderEntry
	ok, err := r.GetJSON(ctx, "k", &out)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, r.SetJSON(ctx, "k", RenderEntry{Status: 200}, 0))
	assert.NoError(t, r.DeleteByPattern(ctx, "render:*"))
	assert.Error(t, r.Ping(ctx))
	assert.Nil(t, r.Client())
}
