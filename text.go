package datagrid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextWrapMode specifies how cell text is wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto picks char wrapping when the text contains wide runes.
	WrapModeAuto
)

// WrapText wraps text to fit within maxWidth using the specified mode.
// Explicit newlines always break.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		m := mode
		if m == WrapModeAuto {
			m = WrapModeWord
			if hasWideRunes(para) {
				m = WrapModeChar
			}
		}
		if m == WrapModeChar {
			lines = append(lines, wrapByChar(ctx, para, maxWidth)...)
		} else {
			lines = append(lines, wrapByWord(ctx, para, maxWidth)...)
		}
	}
	return lines
}

func wrapByWord(ctx *Context, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if ctx.MeasureText(candidate).X <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	// A single word wider than the cell is split by character.
	out := make([]string, 0, len(lines)+1)
	for _, l := range append(lines, line) {
		if ctx.MeasureText(l).X > maxWidth {
			out = append(out, wrapByChar(ctx, l, maxWidth)...)
		} else {
			out = append(out, l)
		}
	}
	return out
}

func wrapByChar(ctx *Context, text string, maxWidth float32) []string {
	if text == "" {
		return []string{""}
	}

	var lines []string
	var b strings.Builder
	for _, r := range text {
		next := b.String() + string(r)
		if b.Len() > 0 && ctx.MeasureText(next).X > maxWidth {
			lines = append(lines, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

func hasWideRunes(text string) bool {
	for _, r := range text {
		if runewidth.RuneWidth(r) > 1 {
			return true
		}
	}
	return false
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	targetWidth := maxWidth - ctx.MeasureText(suffix).X
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= targetWidth {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// TextWidthEllipsis returns text that fits within maxWidth.
// Unlike TruncateText, it returns "" when not even the suffix fits.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		if result := TruncateTextWithSuffix(ctx, text, maxWidth, suffix); ctx.MeasureText(result).X <= maxWidth {
			return result
		}
	}
	return ""
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	if len(lines) == 0 {
		return Vec2{}
	}

	var width float32
	for _, line := range lines {
		width = maxf(width, ctx.MeasureText(line).X)
	}
	return Vec2{X: width, Y: float32(len(lines)) * ctx.LineHeight()}
}
