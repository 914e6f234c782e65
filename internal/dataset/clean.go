package dataset

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	breakRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// CleanHTML strips markup from comment text. Spam comments frequently carry
// fragments like <br /> and entity-encoded punctuation; the classifier should
// see the rendered text, not the markup. Returns the input unchanged when it
// cannot be parsed.
func CleanHTML(content string) string {
	// <br> carries no text node, so words on either side would be glued
	// together by Text(); turn breaks into spaces up front.
	content = breakRe.ReplaceAllString(content, " ")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	doc.Find("script, style").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	text := doc.Text()
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return text
}
