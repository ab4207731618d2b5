package fieldvalidation

import (
	"mime"
	"mime/multipart"
	"strings"
)

// UploadedFile is the view of an uploaded file that [FileUploadRule] needs.
type UploadedFile interface {
	Filename() string
	Size() int64
	MediaType() string
}

// MultipartFile adapts a [multipart.FileHeader] to [UploadedFile]. A nil
// Header behaves like an empty file without a name.
type MultipartFile struct {
	Header *multipart.FileHeader
}

func (f MultipartFile) Filename() string {
	if f.Header == nil {
		return ""
	}
	return f.Header.Filename
}

func (f MultipartFile) Size() int64 {
	if f.Header == nil {
		return 0
	}
	return f.Header.Size
}

// MediaType returns the client supplied content type without parameters.
func (f MultipartFile) MediaType() string {
	if f.Header == nil {
		return ""
	}
	ct := f.Header.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// String returns the file name, so messages mentioning the value stay readable.
func (f MultipartFile) String() string {
	return f.Filename()
}
