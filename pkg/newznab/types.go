package newznab

import "encoding/xml"

// Namespace URLs declared on the feed root.
const (
	AtomNS    = "http://www.w3.org/2005/Atom"
	NewznabNS = "http://www.newznab.com/DTD/2010/feeds/attributes/"
)

// Feed is the RSS 2.0 document returned for search requests.
type Feed struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	AtomNS    string   `xml:"xmlns:atom,attr"`
	NewznabNS string   `xml:"xmlns:newznab,attr"`
	Channel   Channel  `xml:"channel"`
}

type Channel struct {
	Title       string   `xml:"title"`
	Description string   `xml:"description"`
	Link        string   `xml:"link"`
	Language    string   `xml:"language"`
	WebMaster   string   `xml:"webMaster"`
	Category    string   `xml:"category"`
	AtomLink    AtomLink `xml:"atom:link"`
	Response    Response `xml:"newznab:response"`
	Items       []Item   `xml:"item"`
}

// AtomLink is the channel's self-reference.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Response carries the result window; the mock never paginates, so the
// offset is always zero and the total covers every match.
type Response struct {
	Offset string `xml:"offset,attr"`
	Total  string `xml:"total,attr"`
}

type Item struct {
	Title      string    `xml:"title"`
	GUID       GUID      `xml:"guid"`
	Link       string    `xml:"link"`
	Comments   string    `xml:"comments"`
	PubDate    string    `xml:"pubDate"`
	Categories []string  `xml:"category"`
	Enclosure  Enclosure `xml:"enclosure"`
	Attrs      []Attr    `xml:"newznab:attr"`
}

type GUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Attr is a newznab:attr name/value pair.
type Attr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ErrorDoc is the Newznab XML error document returned for every failed
// request.
type ErrorDoc struct {
	XMLName     xml.Name `xml:"error"`
	Code        int      `xml:"code,attr"`
	Description string   `xml:"description,attr"`
}
