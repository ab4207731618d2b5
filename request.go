package fieldvalidation

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// ExtractRequest flattens the body fields and uploaded files of r into one
// map suitable for [Validator.Validate].
//
//   - no body type, as for GET and DELETE requests: the query string
//   - application/x-www-form-urlencoded: the body fields; the query string
//     is ignored
//   - multipart/form-data: the body fields plus uploaded files, which
//     override fields of the same name
//   - application/json: the decoded top-level object, numbers as json.Number
//
// Fields with one value become a string, fields with more values a
// []string. A single file becomes an [UploadedFile], several files an
// []UploadedFile. Blank strings are replaced with nil, see [NormalizeBlank].
func ExtractRequest(r *http.Request, cfg RequestConfig) (map[string]any, error) {
	data := map[string]any{}

	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		mt, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type: %v", ErrInvalidForm, err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "":
		addValues(data, r.URL.Query())

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		addValues(data, r.PostForm)

	case "multipart/form-data":
		maxMemory := cfg.MaxMemory
		if maxMemory <= 0 {
			maxMemory = DefaultMaxMemory
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm != nil {
			addValues(data, r.MultipartForm.Value)
			addFiles(data, r.MultipartForm.File)
		}

	case "application/json":
		var body io.Reader = r.Body
		if cfg.MaxJSONBytes > 0 {
			body = io.LimitReader(r.Body, cfg.MaxJSONBytes)
		}
		decoder := json.NewDecoder(body)
		decoder.UseNumber()
		if err := decoder.Decode(&data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

	default:
		return nil, fmt.Errorf("%w: got %s, expected form, multipart or JSON data", ErrUnsupportedMediaType, mediaType)
	}

	return NormalizeBlank(data), nil
}

func addValues(data map[string]any, values map[string][]string) {
	for k, vs := range values {
		switch len(vs) {
		case 0:
			data[k] = nil
		case 1:
			data[k] = vs[0]
		default:
			data[k] = append([]string(nil), vs...)
		}
	}
}

func addFiles(data map[string]any, files map[string][]*multipart.FileHeader) {
	for k, fhs := range files {
		switch len(fhs) {
		case 0:
			continue
		case 1:
			data[k] = MultipartFile{Header: fhs[0]}
		default:
			list := make([]UploadedFile, len(fhs))
			for i := range fhs {
				list[i] = MultipartFile{Header: fhs[i]}
			}
			data[k] = list
		}
	}
}

// NormalizeBlank replaces string values that are empty or consist of white
// space only with nil, in place, and returns data.
func NormalizeBlank(data map[string]any) map[string]any {
	for k, v := range data {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			data[k] = nil
		}
	}
	return data
}
