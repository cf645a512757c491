package localnews

import (
	"log"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

var (
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	imgSrcRe = regexp.MustCompile(`(?i)<img[^>]*?src=["']([^"']+)["']`)
)

// Fallback values substituted for missing item fields. The site is Spanish
// language, so the placeholders match what the pages render.
const (
	TitleFallback = "Sin título"
	LinkFallback  = "#"
	DateFallback  = "Fecha desconocida"
)

const (
	descriptionLimit  = 150
	ellipsis          = "..."
	displayDateLayout = "02-01-2006 15:04"
)

// ParseFeed converts one feed's raw XML into articles tagged with the
// source name, in document order. A structurally broken document yields
// zero items for this cycle; a bad field never drops the rest of the feed.
func ParseFeed(raw, source string) []Article {
	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		log.Printf("localnews: parse %s failed: %v", source, err)
		return nil
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, parseItem(item, source))
	}
	return articles
}

func parseItem(item *gofeed.Item, source string) Article {
	article := Article{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: summarize(item.Description),
		PubDate:     DateFallback,
		Image:       itemImage(item),
		Source:      source,
	}

	if article.Title == "" {
		article.Title = TitleFallback
	}
	if article.Link == "" {
		article.Link = LinkFallback
	}

	// An unparseable pubDate keeps the zero RawDate, which sorts as the
	// oldest possible article.
	if item.PublishedParsed != nil {
		article.RawDate = *item.PublishedParsed
		article.PubDate = article.RawDate.Format(displayDateLayout)
	}

	return article
}

// summarize strips markup from a feed description and truncates it for the
// listing cards. This is a best-effort tag removal pass for display text,
// not HTML sanitization.
func summarize(description string) string {
	text := tagRe.ReplaceAllString(description, "")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + ellipsis
}

// itemImage resolves the article thumbnail with the same precedence the
// feeds themselves use: an image enclosure first, then a media:content
// element marked as an image, then the first <img> inside the encoded
// content (or the raw description when there is none).
func itemImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image") && enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if content.Attrs["medium"] == "image" && content.Attrs["url"] != "" {
				return content.Attrs["url"]
			}
		}
	}

	encoded := item.Content
	if encoded == "" {
		encoded = item.Description
	}
	if match := imgSrcRe.FindStringSubmatch(encoded); match != nil {
		return match[1]
	}

	return ""
}
