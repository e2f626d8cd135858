package calc

import "strings"

// glyphs maps keypad symbols to the text the lexer understands.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"√", "sqrt",
	"π", "pi",
)

// Normalize rewrites the keypad glyphs ×, ÷, √ and π in src to *, /, sqrt and
// pi, respectively. Evaluate normalizes its input before lexing, so positions
// reported by errors refer to the normalized text.
func Normalize(src string) string {
	return glyphs.Replace(src)
}
