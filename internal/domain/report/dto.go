package report

// File is a rendered report ready to be streamed.
type File struct {
	FileName    string
	ContentType string
	Content     []byte
}
