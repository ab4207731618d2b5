package fieldvalidation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FileUploadRule validates uploaded files: the value must implement
// [UploadedFile], not exceed the maximum size and have an allowed media type.
// Nil fails.
type FileUploadRule struct {
	ruleBase
	message          string
	maxSizeMessage   string
	mimeTypesMessage string
	maxSize          *int64
	mimeTypes        []string
}

// FileUpload returns a rule for uploaded files. Without further setup any
// uploaded file passes.
func FileUpload() *FileUploadRule {
	return &FileUploadRule{
		message:          "value should be an uploaded file, got {{ type }}.",
		maxSizeMessage:   "file is too large ({{ size }} bytes); allowed maximum size is {{ limit }} bytes",
		mimeTypesMessage: "the mime type '{{ type }}' of the file is not allowed; allowed mime types are: {{ types }}.",
	}
}

// SetMaxSize sets the maximum file size in bytes.
func (r *FileUploadRule) SetMaxSize(size int64) *FileUploadRule {
	r.maxSize = &size
	return r
}

// SetMimeTypes sets the allowed media types. An empty list allows all.
func (r *FileUploadRule) SetMimeTypes(types ...string) *FileUploadRule {
	r.mimeTypes = types
	return r
}

// SetMessage sets the message for values that are not uploaded files.
// Placeholders: value, type.
func (r *FileUploadRule) SetMessage(message string) *FileUploadRule {
	r.message = message
	return r
}

// SetMaxSizeMessage sets the message for files that are too large.
// Placeholders: value, size, limit.
func (r *FileUploadRule) SetMaxSizeMessage(message string) *FileUploadRule {
	r.maxSizeMessage = message
	return r
}

// SetMimeTypesMessage sets the message for files with a media type that is
// not allowed. Placeholders: value, type, types.
func (r *FileUploadRule) SetMimeTypesMessage(message string) *FileUploadRule {
	r.mimeTypesMessage = message
	return r
}

func (r *FileUploadRule) Test(value any, _ string, _ map[string]any) bool {
	f, ok := value.(UploadedFile)
	if !ok || isNull(value) {
		return r.fail(r.message, map[string]any{"value": value, "type": fmt.Sprintf("%T", value)})
	}

	if r.maxSize != nil && f.Size() > *r.maxSize {
		return r.fail(r.maxSizeMessage, map[string]any{"value": value, "size": f.Size(), "limit": *r.maxSize})
	}

	if len(r.mimeTypes) > 0 && !slices.Contains(r.mimeTypes, f.MediaType()) {
		return r.fail(r.mimeTypesMessage, map[string]any{
			"value": value,
			"type":  f.MediaType(),
			"types": strings.Join(r.mimeTypes, ", "),
		})
	}
	return r.pass()
}

func (r *FileUploadRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	ref.Value.Format = "binary"
	if r.maxSize != nil {
		appendDescription(ref, fmt.Sprintf("max %d bytes", *r.maxSize))
	}
	if len(r.mimeTypes) > 0 {
		appendDescription(ref, "allowed types: "+strings.Join(r.mimeTypes, ", "))
	}
	return nil
}
