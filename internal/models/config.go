package models

// SystemConfig stores admin-editable settings such as payment provider
// keys. Keys are unique; values are opaque strings.
type SystemConfig struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// FooterContent is a singleton record with replace-whole-record update
// semantics.
type FooterContent struct {
	ID          int               `json:"id"`
	Copyright   string            `json:"copyright"`
	Links       []FooterLink      `json:"links"`
	SocialMedia []SocialMediaLink `json:"socialMedia"`
}

type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type SocialMediaLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
