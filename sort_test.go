package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func TestReverseSortDirection(t *testing.T) {
	tests := []struct {
		from, want datagrid.SortDirection
	}{
		{datagrid.SortDescending, datagrid.SortAscending},
		{datagrid.SortAscending, datagrid.SortDescending},
		{datagrid.SortNone, datagrid.SortDescending},
		{"sideways", datagrid.SortDescending},
	}
	for _, tt := range tests {
		if got := datagrid.ReverseSortDirection(tt.from); got != tt.want {
			t.Errorf("ReverseSortDirection(%q) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestSortHeaderActivate(t *testing.T) {
	var gotKey string
	var gotDir datagrid.SortDirection
	calls := 0
	h := datagrid.SortHeader{
		ColumnKey: "price",
		Direction: datagrid.SortDescending,
		OnSortChange: func(key string, dir datagrid.SortDirection) {
			gotKey, gotDir = key, dir
			calls++
		},
	}

	next := h.Activate()
	if next != datagrid.SortAscending {
		t.Errorf("expected ASC, got %q", next)
	}
	if calls != 1 || gotKey != "price" || gotDir != datagrid.SortAscending {
		t.Errorf("expected one call with (price, ASC), got %d calls with (%s, %s)", calls, gotKey, gotDir)
	}

	h.Direction = datagrid.SortNone
	if next := h.Activate(); next != datagrid.SortDescending {
		t.Errorf("expected DESC from unsorted, got %q", next)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
