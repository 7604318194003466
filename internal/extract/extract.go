package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageText returns the visible text of an HTML snapshot, lowercased for
// case-insensitive matching. If the snapshot cannot be parsed the raw
// snapshot is matched against instead.
func PageText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.ToLower(html)
	}

	// Script and style contents are not visible to the user
	doc.Find("script, style").Remove()

	return strings.ToLower(doc.Text())
}

// Contains reports whether the page text contains the fragment,
// ignoring case
func Contains(pageText, fragment string) bool {
	return strings.Contains(pageText, strings.ToLower(fragment))
}
