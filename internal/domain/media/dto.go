package media

// PresignRequest asks for an upload URL for a client-named object
type PresignRequest struct {
	Filename    string `json:"filename" validate:"required,max=1024"`
	ContentType string `json:"content_type" validate:"required,max=255"`
}

// PresignResponse tells the client how to perform the upload
type PresignResponse struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
}
