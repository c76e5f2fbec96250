package content

import "unicode/utf8"

const ellipsis = "..."

// genericFiller is appended once to text that falls short of its minimum.
const genericFiller = "Questo prodotto è stato progettato con attenzione ai dettagli e materiali di alta qualità per garantire la massima soddisfazione."

// Budget bounds a text length in runes. A zero or negative bound is unset.
type Budget struct {
	Min int
	Max int
}

// Fit pads text with the generic filler sentence when it is shorter than
// b.Min, then truncates it with an ellipsis when it is longer than b.Max.
func Fit(text string, b Budget) string {
	return FitWith(text, b, genericFiller)
}

// FitWith is Fit with a caller-chosen filler sentence.
// Padding is a single pass: the result may still be shorter than b.Min.
// When b.Max >= 3 a truncated result is exactly b.Max runes long.
func FitWith(text string, b Budget, filler string) string {
	if b.Min > 0 && utf8.RuneCountInString(text) < b.Min && filler != "" {
		if text == "" {
			text = filler
		} else {
			text += " " + filler
		}
	}
	if b.Max > 0 && utf8.RuneCountInString(text) > b.Max {
		text = truncateRunes(text, b.Max-len(ellipsis)) + ellipsis
	}
	return text
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
