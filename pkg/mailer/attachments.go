package mailer

import "strings"

// File is a client-supplied upload: name plus a data-URI (or bare
// base64) payload.
type File struct {
	Name string
	Data string
}

// Attachment is a mail-transport attachment descriptor.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// StripDataURIPrefix drops everything up to and including the first
// comma of a data-URI. A string without a comma is treated as an
// already-bare base64 payload.
func StripDataURIPrefix(dataURL string) (data, encoding string) {
	if idx := strings.Index(dataURL, ","); idx != -1 {
		return dataURL[idx+1:], "base64"
	}
	return dataURL, "base64"
}

// MapAttachments converts uploads into transport descriptors. No size
// limit is enforced here; the HTTP layer caps total request body size.
func MapAttachments(files []File) []Attachment {
	attachments := make([]Attachment, 0, len(files))
	for _, f := range files {
		data, encoding := StripDataURIPrefix(f.Data)
		name := f.Name
		if name == "" {
			name = "attachment"
		}
		attachments = append(attachments, Attachment{
			Filename: name,
			Content:  data,
			Encoding: encoding,
		})
	}
	return attachments
}
