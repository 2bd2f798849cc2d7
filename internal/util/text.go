package util

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	reBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// PlainText strips the markup upstream embeds in ability descriptions.
// <br> becomes a line break; other tags are dropped.
func PlainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return NormalizeSpaces(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(reBreak.ReplaceAllString(html, "\n")))
	if err != nil {
		return NormalizeSpaces(html)
	}

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = NormalizeSpaces(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func NormalizeSpaces(input string) string {
	s := strings.ReplaceAll(input, "\u00A0", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// WrapText wraps text to width, keeping existing line breaks.
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len([]rune(current))+1+len([]rune(word)) <= width {
				current += " " + word
				continue
			}
			result = append(result, current)
			current = word
		}
		result = append(result, current)
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}
