package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/typesnip/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "data", "snippets.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddAndListSnippets(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	added, err := st.AddSnippets(ctx, "Haskell", []string{"main = pure ()", "x = 1"})
	if err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 added, got %d", added)
	}
	got, err := st.ListSnippets(ctx, "Haskell")
	if err != nil {
		t.Fatalf("list snippets: %v", err)
	}
	if len(got) != 2 || got[0] != "main = pure ()" || got[1] != "x = 1" {
		t.Fatalf("unexpected snippets: %q", got)
	}
}

func TestAddSnippetsSkipsDuplicates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.AddSnippets(ctx, "Go", []string{"a := 1"}); err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	added, err := st.AddSnippets(ctx, "Go", []string{"a := 1", "b := 2"})
	if err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 new snippet, got %d", added)
	}
	added, err = st.AddSnippets(ctx, "Zig", []string{"a := 1"})
	if err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected same body in another category to be added, got %d", added)
	}
}

func TestListCategories(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.AddSnippets(ctx, "Zig", []string{"const x = 1;"}); err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	if _, err := st.AddSnippets(ctx, "Go", []string{"a", "b"}); err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	counts, err := st.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	want := []model.CategoryCount{
		{Category: "Go", User: 2},
		{Category: "Zig", User: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("unexpected counts: %+v", counts)
		}
	}
}

func TestDeleteCategory(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.AddSnippets(ctx, "Go", []string{"a", "b"}); err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	n, err := st.DeleteCategory(ctx, "Go")
	if err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
	got, err := st.ListSnippets(ctx, "Go")
	if err != nil {
		t.Fatalf("list snippets: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no snippets after delete, got %q", got)
	}
}

func TestReopenKeepsSnippets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := st.AddSnippets(context.Background(), "Go", []string{"a"}); err != nil {
		t.Fatalf("add snippets: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	got, err := st.ListSnippets(context.Background(), "Go")
	if err != nil {
		t.Fatalf("list snippets: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 snippet after reopen, got %d", len(got))
	}
}
