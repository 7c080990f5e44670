package lookup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Substrings that route a link to a field, checked in this order
const (
	twitterHost     = "twitter.com"
	telegramHost    = "t.me"
	dexscreenerHost = "dexscreener.com"
	explorerHost    = "etherscan.io"
)

// Extract collects candidate values from a document's markup.
// Markup that cannot be parsed yields no candidates.
func Extract(doc Document) Candidates {
	var c Candidates

	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Markup))
	if err != nil {
		return c
	}

	// all headings first, then titles; blank ones still take part in the vote
	for _, selector := range []string{"h1", "title"} {
		page.Find(selector).Each(func(_ int, s *goquery.Selection) {
			c.Add(FieldName, strings.TrimSpace(s.Text()))
		})
	}

	page.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if field, ok := Classify(href); ok {
			c.Add(field, href)
		}
	})

	return c
}

// Classify decides which field a link belongs to.
// The first matching rule wins, so a link lands in at most one field.
func Classify(href string) (Field, bool) {
	switch {
	case strings.Contains(href, twitterHost):
		return FieldTwitter, true
	case strings.Contains(href, telegramHost):
		return FieldTelegram, true
	case strings.Contains(href, dexscreenerHost):
		return FieldDexscreener, true
	case !strings.Contains(href, explorerHost) && strings.HasPrefix(href, "http"):
		return FieldWebsite, true
	default:
		return 0, false
	}
}
