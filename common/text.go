package common

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// WrapText breaks s into lines of at most cols columns, splitting on words.
func WrapText(s string, cols int) []string {
	if cols <= 0 || s == "" {
		return []string{s}
	}
	return strings.Split(wordwrap.String(s, cols), "\n")
}
