package datagrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/datagrid"
)

func textCtx() *datagrid.Context {
	ctx := datagrid.NewContext()
	ctx.SetStyle(datagrid.TextCellStyle())
	return ctx
}

func TestWrapText(t *testing.T) {
	ctx := textCtx()

	tests := []struct {
		name     string
		text     string
		maxWidth float32
		mode     datagrid.TextWrapMode
		want     []string
	}{
		{"empty", "", 10, datagrid.WrapModeWord, nil},
		{"fits", "hello", 10, datagrid.WrapModeWord, []string{"hello"}},
		{"words", "the quick brown fox", 10, datagrid.WrapModeWord, []string{"the quick", "brown fox"}},
		{"long word", "abcdefghij", 4, datagrid.WrapModeWord, []string{"abcd", "efgh", "ij"}},
		{"chars", "abcdef", 4, datagrid.WrapModeChar, []string{"abcd", "ef"}},
		{"newlines", "a\nb c", 10, datagrid.WrapModeWord, []string{"a", "b c"}},
		{"no width", "a b\nc", 0, datagrid.WrapModeWord, []string{"a b", "c"}},
		{"auto wide", "日本語です", 4, datagrid.WrapModeAuto, []string{"日本", "語で", "す"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datagrid.WrapText(ctx, tt.text, tt.maxWidth, tt.mode))
		})
	}
}

func TestTruncateText(t *testing.T) {
	ctx := textCtx()

	assert.Equal(t, "short", datagrid.TruncateText(ctx, "short", 10))
	assert.Equal(t, "Infer..", datagrid.TruncateText(ctx, "Infernus GT", 7))
	assert.Equal(t, "Inf~", datagrid.TruncateTextWithSuffix(ctx, "Infernus", 4, "~"))
}

func TestTextWidthEllipsis(t *testing.T) {
	ctx := textCtx()

	assert.Equal(t, "", datagrid.TextWidthEllipsis(ctx, "abc", 0))
	assert.Equal(t, "abc", datagrid.TextWidthEllipsis(ctx, "abc", 3))
	assert.Equal(t, "a..", datagrid.TextWidthEllipsis(ctx, "abcd", 3))
	assert.Equal(t, "..", datagrid.TextWidthEllipsis(ctx, "abcd", 2))
	assert.Equal(t, ".", datagrid.TextWidthEllipsis(ctx, "abcd", 1))
}

func TestMeasureWrappedText(t *testing.T) {
	ctx := textCtx()

	assert.Equal(t, datagrid.Vec2{X: 9, Y: 2}, datagrid.MeasureWrappedText(ctx, "the quick brown fox", 10, datagrid.WrapModeWord))
	assert.Equal(t, datagrid.Vec2{}, datagrid.MeasureWrappedText(ctx, "", 10, datagrid.WrapModeWord))
}
