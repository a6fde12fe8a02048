// Package content defines content parts for LLM messages.
package content

// Part is a piece of content within a message.
// External packages can implement this interface to add custom content types.
type Part interface {
	PartKind() string
}

// Text is a plain text content part.
type Text struct {
	Text string
}

func (t Text) PartKind() string { return "text" }

// Image is an image content part, referenced by URL or embedded as raw bytes.
type Image struct {
	URL       string
	Data      []byte
	MediaType string
}

func (i Image) PartKind() string { return "image" }
