package ui

import (
	"strings"
	"unicode/utf8"
)

// wrapText breaks text into lines of at most width cells. Explicit newlines
// start a new line; words longer than width are split.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var current string
		for _, word := range words {
			for utf8.RuneCountInString(word) > width {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				head, tail := splitAt(word, width)
				lines = append(lines, head)
				word = tail
			}
			switch {
			case current == "":
				current = word
			case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > width:
				lines = append(lines, current)
				current = word
			default:
				current += " " + word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	// A trailing newline does not add an empty line
	if n := len(lines); n > 1 && lines[n-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:n-1]
	}
	return lines
}

func splitAt(s string, n int) (string, string) {
	runes := []rune(s)
	return string(runes[:n]), string(runes[n:])
}

// centered returns the x that centers text of the given width in total
func centered(total, width int) int {
	return (total - width) / 2
}
