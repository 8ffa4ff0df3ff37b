package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAligns(t *testing.T) {
	rows := [][]string{
		{"root", "1", "(0,0 80x24)"},
		{"  frame", "12", "(0,0 40x24)"},
		{"    list", "3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"root       1  (0,0 80x24)",
		"  frame   12  (0,0 40x24)",
		"    list   3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	want := []string{"日本  x", "ab    y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
