package chart

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lowercases title and collapses every whitespace run into one hyphen.
func Slug(title string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(title, "-"))
}

// Filename derives a download name such as "custom-chart.png".
func Filename(title, ext string) string {
	return Slug(title) + "." + strings.TrimPrefix(ext, ".")
}
