package corpus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typesnip/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Category", "User"}
	rows := [][]string{
		{"Go", "12"},
		{"Haskell", "3"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Category  User" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Go          12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Haskell      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderCategories(t *testing.T) {
	var buf bytes.Buffer
	err := RenderCategories(&buf, []model.CategoryCount{
		{Category: "English", Builtin: 10, User: 2},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Category") || !strings.Contains(out, "English") || !strings.Contains(out, "12") {
		t.Fatalf("unexpected table: %q", out)
	}
}

func TestRenderCategoriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCategories(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No categories found.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
