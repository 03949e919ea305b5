package feed

import (
	"encoding/xml"
)

// RSS is the root of an RSS 2.0 document, the atom namespace carries the channel self link
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	AtomNS  string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel is a single story feed, hot, ask or show
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Language      string     `xml:"language,omitempty"`
	Generator     string     `xml:"generator,omitempty"`
	SelfLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink points a channel to the URL it is served from
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSGUID identifies a story by its discussion page
type RSSGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// RSSItem is a story, Link goes to the story target and Comments to the discussion
type RSSItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        RSSGUID `xml:"guid"`
	Description string  `xml:"description"`
	Author      string  `xml:"author,omitempty"`
	Comments    string  `xml:"comments,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
}
