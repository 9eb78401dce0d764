package notion

import "time"

// FileSource distinguishes files hosted by the service from external links.
type FileSource string

const (
	HostedFile   FileSource = "file"
	ExternalFile FileSource = "external"
)

// FileObject is a file reference as used by image, video, pdf, file and
// audio blocks, files properties and page covers.
type FileObject struct {
	Type     FileSource   `json:"type"`
	File     *HostedRef   `json:"file,omitempty"`
	External *ExternalRef `json:"external,omitempty"`
	Caption  []RichText   `json:"caption,omitempty"`
	Name     string       `json:"name,omitempty"`
}

// HostedRef is a file uploaded to the service.
// The URL is temporary and expires at ExpiryTime.
type HostedRef struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// ExternalRef is a link to a file somewhere else.
type ExternalRef struct {
	URL string `json:"url" validate:"required,url"`
}

// NewExternalFile references a file by URL.
func NewExternalFile(url string) FileObject {
	return FileObject{Type: ExternalFile, External: &ExternalRef{URL: url}}
}

// URL returns the download URL regardless of where the file is hosted.
func (f FileObject) URL() string {
	switch {
	case f.External != nil:
		return f.External.URL
	case f.File != nil:
		return f.File.URL
	}
	return ""
}

// IconType tells the kind of a page, database or callout icon.
type IconType string

const (
	EmojiIcon    IconType = "emoji"
	ExternalIcon IconType = "external"
	FileIcon     IconType = "file"
)

// Icon is either an emoji or a file.
type Icon struct {
	Type     IconType     `json:"type"`
	Emoji    string       `json:"emoji,omitempty"`
	External *ExternalRef `json:"external,omitempty"`
	File     *HostedRef   `json:"file,omitempty"`
}

// NewEmoji creates an emoji icon.
func NewEmoji(emoji string) *Icon {
	return &Icon{Type: EmojiIcon, Emoji: emoji}
}

// NewIconURL creates an icon from an external image.
func NewIconURL(url string) *Icon {
	return &Icon{Type: ExternalIcon, External: &ExternalRef{URL: url}}
}
