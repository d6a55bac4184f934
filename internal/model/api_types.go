package model

import "encoding/json"

// PageData is the "data" object of a getContentPageData response.
// Raw holds the object exactly as the server sent it.
type PageData struct {
	Raw json.RawMessage
}

// MainContent decodes the typed view of the page's mainContent. It returns
// nil without error when the data object has no mainContent.
func (p *PageData) MainContent() (*MainContent, error) {
	var data struct {
		MainContent *MainContent `json:"mainContent"`
	}
	if err := json.Unmarshal(p.Raw, &data); err != nil {
		return nil, err
	}
	return data.MainContent, nil
}

// MainContent describes the content item a Jupiter page is about.
type MainContent struct {
	Type       string  `json:"type"`
	Heading    string  `json:"heading"`
	SubHeading string  `json:"subHeading"`
	Medias     []Media `json:"medias"`
}

// Title joins heading and sub-heading the way they are shown on the site.
func (m *MainContent) Title() string {
	if m.SubHeading == "" {
		return m.Heading
	}
	return m.Heading + " -- " + m.SubHeading
}

// Media is one playable item of a content page.
type Media struct {
	Src       MediaSrc   `json:"src"`
	Subtitles []Subtitle `json:"subtitles"`
}

// MediaSrc holds the file references of a media item. File may be
// protocol-relative ("//...").
type MediaSrc struct {
	File string `json:"file"`
	HLS  string `json:"hls,omitempty"`
}

// Subtitle is a subtitle track attached to a media item.
type Subtitle struct {
	Src string `json:"src"`
}
