package util

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Serbian Latin diacritics folded to ASCII before slugging.
var srFold = strings.NewReplacer(
	"š", "s", "đ", "dj", "č", "c", "ć", "c", "ž", "z",
	"Š", "s", "Đ", "dj", "Č", "c", "Ć", "c", "Ž", "z",
)

func Slugify(s string) string {
	s = srFold.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "item"
	}
	return s
}
