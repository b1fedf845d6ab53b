package newznab

import (
	"fmt"
	"strconv"
	"time"

	ptn "github.com/razsteinmetz/go-ptn"

	"nzbmock/internal/querystring"
	"nzbmock/pkg/categories"
	"nzbmock/pkg/config"
	"nzbmock/pkg/models"
)

// ContentType is the MIME type for NZB payloads and enclosures.
const ContentType = "application/x-nzb"

// Builder renders catalog items into the Newznab response vocabulary.
type Builder struct {
	externalURL string
	apiKey      string
	webMaster   string
	table       categories.Table
	now         func() time.Time
}

func NewBuilder(cfg *config.Config, table categories.Table) *Builder {
	return &Builder{
		externalURL: cfg.ExternalURL,
		apiKey:      cfg.APIKey,
		webMaster:   "admin@" + cfg.ExternalHost(),
		table:       table,
		now:         time.Now,
	}
}

// Feed renders the matched items into a search response. Items appear in
// the order given; the response window always reports offset 0 and the
// full total.
func (b *Builder) Feed(items []*models.Item) *Feed {
	feed := &Feed{
		Version:   "2.0",
		AtomNS:    AtomNS,
		NewznabNS: NewznabNS,
		Channel: Channel{
			Title:       "Newznab Mock",
			Description: "Newznab Mock API Results",
			Link:        b.externalURL,
			Language:    "en-gb",
			WebMaster:   b.webMaster,
			Category:    "NZB",
			AtomLink: AtomLink{
				Href: b.externalURL + "/api",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Response: Response{
				Offset: "0",
				Total:  strconv.Itoa(len(items)),
			},
			Items: make([]Item, 0, len(items)),
		},
	}

	pubDate := b.now().Format(time.RFC1123Z)
	for _, item := range items {
		feed.Channel.Items = append(feed.Channel.Items, b.feedItem(item, pubDate))
	}
	return feed
}

func (b *Builder) feedItem(item *models.Item, pubDate string) Item {
	id := item.ID()
	download := b.DownloadLink(id)
	details := b.detailsLink(id)
	size := strconv.FormatUint(item.Size, 10)

	attrs := make([]Attr, 0, len(item.Categories)+3)
	for _, category := range item.Categories {
		attrs = append(attrs, Attr{Name: "category", Value: category})
	}
	attrs = append(attrs,
		Attr{Name: "size", Value: size},
		Attr{Name: "guid", Value: id},
		Attr{Name: "group", Value: item.Group},
	)
	attrs = append(attrs, parsedAttrs(item.Title)...)

	return Item{
		Title:      item.Title,
		GUID:       GUID{IsPermaLink: "true", Value: details},
		Link:       download,
		Comments:   details,
		PubDate:    pubDate,
		Categories: b.table.DisplayNames(item.Categories),
		Enclosure: Enclosure{
			URL:    download,
			Length: size,
			Type:   ContentType,
		},
		Attrs: attrs,
	}
}

// parsedAttrs derives season/episode/resolution attributes from titles
// that parse as release names. Titles that do not parse contribute
// nothing.
func parsedAttrs(title string) []Attr {
	info, err := ptn.Parse(title)
	if err != nil {
		return nil
	}

	var attrs []Attr
	if info.Season > 0 {
		attrs = append(attrs, Attr{Name: "season", Value: strconv.Itoa(info.Season)})
	}
	if info.Episode > 0 {
		attrs = append(attrs, Attr{Name: "episode", Value: strconv.Itoa(info.Episode)})
	}
	if info.Resolution != "" {
		attrs = append(attrs, Attr{Name: "resolution", Value: info.Resolution})
	}
	return attrs
}

// DownloadLink builds the api download URL for an identifier, preserving
// the conventional t/id/apikey parameter order.
func (b *Builder) DownloadLink(id string) string {
	query, err := querystring.Encode(struct {
		T      string `url:"t"`
		ID     string `url:"id"`
		APIKey string `url:"apikey"`
	}{
		T:      "get",
		ID:     id,
		APIKey: b.apiKey,
	})
	if err != nil {
		// Only reachable if the struct above stops being a struct.
		return fmt.Sprintf("%s/api?t=get&id=%s", b.externalURL, id)
	}
	return b.externalURL + "/api?" + query
}

func (b *Builder) detailsLink(id string) string {
	return b.externalURL + "/details/" + id
}

// Error builds the error document for a failed request.
func Error(code int, description string) *ErrorDoc {
	return &ErrorDoc{Code: code, Description: description}
}
