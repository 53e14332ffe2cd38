package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"job-board/internal/querystate"

	"github.com/sirupsen/logrus"
)

const renderPrefix = "render:"

// RenderEntry is one cached public GET response.
type RenderEntry struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// RenderKey keys a response by path, canonical listing query and locale, so
// equivalent URLs share one entry.
func RenderKey(path, rawQuery, locale string) string {
	canonical := querystate.BuildHref("", querystate.ParseQuery(rawQuery))
	sum := sha256.Sum256([]byte(strings.ToLower(locale) + "|" + canonical))
	return renderPrefix + path + ":" + hex.EncodeToString(sum[:16])
}

// RenderPattern matches every entry of path.
func RenderPattern(path string) string {
	return renderPrefix + escapeGlob(path) + ":*"
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

type patternDeleter interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// PathNotifier tells connected clients that paths changed.
type PathNotifier interface {
	NotifyPathsRevalidated(paths []string)
}

// Revalidator drops the render cache of paths and notifies listeners.
type Revalidator struct {
	store    patternDeleter
	notifier PathNotifier
	logger   logrus.FieldLogger
}

func NewRevalidator(store patternDeleter, notifier PathNotifier, logger logrus.FieldLogger) *Revalidator {
	return &Revalidator{store: store, notifier: notifier, logger: logger}
}

func (r *Revalidator) RevalidatePaths(ctx context.Context, paths ...string) error {
	seen := make(map[string]struct{}, len(paths))
	clean := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		clean = append(clean, p)
	}
	if len(clean) == 0 {
		return nil
	}

	var firstErr error
	if r.store != nil {
		for _, p := range clean {
			if err := r.store.DeleteByPattern(ctx, RenderPattern(p)); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if r.notifier != nil {
		r.notifier.NotifyPathsRevalidated(clean)
	}
	if r.logger != nil {
		r.logger.WithField("paths", clean).Debug("[Cache] paths revalidated")
	}
	return firstErr
}
