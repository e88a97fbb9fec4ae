package datagrid_test

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func TestDrawListBounds(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	if _, ok := dl.Bounds(); ok {
		t.Fatal("expected no bounds for an empty list")
	}

	dl.AddRect(10, 20, 30, 5, datagrid.ColorWhite)
	dl.AddRect(0, 22, 4, 10, datagrid.ColorWhite)
	dl.AddRect(100, 100, 10, 10, datagrid.ColorTransparent)

	got, ok := dl.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := datagrid.Rect{X: 0, Y: 20, W: 40, H: 12}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDrawListBoundsIgnoresClip(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 5, 5)
	dl.AddRect(0, 0, 50, 1, datagrid.ColorWhite)
	dl.PopClipRect()

	got, _ := dl.Bounds()
	if got.W != 50 {
		t.Errorf("expected clipped content to count, got width %f", got.W)
	}
}

func TestDrawListTextAdvance(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.AddText(0, 0, "a日", datagrid.ColorWhite, 1, 8, 8)
	got, _ := dl.Bounds()
	if got.W != 24 || got.H != 8 {
		t.Errorf("expected 24x8 (wide rune takes two cells), got %vx%v", got.W, got.H)
	}
}

func TestDrawListFinalize(t *testing.T) {
	dl := datagrid.AcquireDrawList()
	defer datagrid.ReleaseDrawList(dl)

	dl.SetTexture(3)
	dl.SetTexture(0)
	dl.AddRect(0, 0, 1, 1, datagrid.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected empty commands dropped, got %d commands", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("expected 6 indices, got %d", dl.CmdBuffer[0].ElemCount)
	}
}
