package corpus

import (
	"context"
	"sort"

	"github.com/verte-zerg/typesnip/internal/model"
)

// Source supplies user snippets, typically the SQLite store.
type Source interface {
	ListCategories(ctx context.Context) ([]model.CategoryCount, error)
	ListSnippets(ctx context.Context, category model.Category) ([]string, error)
}

// Library serves snippets from the built-in pools extended by a Source.
type Library struct {
	source  Source
	picker  *Picker
	onError func(error)
}

// NewLibrary constructs a Library. source may be nil for built-ins only;
// onError receives source failures and may be nil.
func NewLibrary(source Source, picker *Picker, onError func(error)) *Library {
	if picker == nil {
		picker = NewPicker()
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Library{source: source, picker: picker, onError: onError}
}

// Categories lists built-in categories first, then user categories sorted by name.
func (l *Library) Categories(ctx context.Context) []model.Category {
	out := BuiltinCategories()
	counts, err := l.counts(ctx)
	if err != nil {
		l.onError(err)
		return out
	}
	var extra []model.Category
	for _, c := range counts {
		if len(BuiltinSnippets(c.Category)) == 0 && c.User > 0 {
			extra = append(extra, c.Category)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Counts reports built-in and user snippet counts per category.
func (l *Library) Counts(ctx context.Context) ([]model.CategoryCount, error) {
	counts, err := l.counts(ctx)
	if err != nil {
		return nil, err
	}
	byName := map[model.Category]model.CategoryCount{}
	for _, c := range counts {
		byName[c.Category] = c
	}
	out := make([]model.CategoryCount, 0, len(byName)+4)
	for _, c := range BuiltinCategories() {
		entry := byName[c]
		entry.Category = c
		entry.Builtin = len(BuiltinSnippets(c))
		out = append(out, entry)
		delete(byName, c)
	}
	var extra []model.CategoryCount
	for _, c := range byName {
		extra = append(extra, c)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Category < extra[j].Category })
	return append(out, extra...), nil
}

// Pool returns every normalized snippet of a category.
func (l *Library) Pool(ctx context.Context, category model.Category) []string {
	pool := NormalizeAll(BuiltinSnippets(category))
	if l.source == nil {
		return pool
	}
	user, err := l.source.ListSnippets(ctx, category)
	if err != nil {
		l.onError(err)
		return pool
	}
	return append(pool, NormalizeAll(user)...)
}

// Snippet implements session.Provider. Unknown categories fall back to
// English so the result is never empty.
func (l *Library) Snippet(category model.Category) string {
	pool := l.Pool(context.Background(), category)
	if len(pool) == 0 {
		pool = NormalizeAll(BuiltinSnippets(English))
	}
	return l.picker.Pick(pool)
}

func (l *Library) counts(ctx context.Context) ([]model.CategoryCount, error) {
	if l.source == nil {
		return nil, nil
	}
	return l.source.ListCategories(ctx)
}
