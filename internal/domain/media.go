package domain

// UploadedImage describes one stored image in the upload response. Field
// names match what the web client reads back.
type UploadedImage struct {
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
	URL          string `json:"url"`
}
