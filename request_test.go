package fieldvalidation_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fv "github.com/Gobd/fieldvalidation"
)

func formRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/signup?source=ad", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func multipartRequest(t *testing.T, fields map[string]string, files map[string][]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for k, names := range files {
		for _, name := range names {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", `form-data; name="`+k+`"; filename="`+name+`"`)
			h.Set("Content-Type", "image/png")
			part, err := w.CreatePart(h)
			require.NoError(t, err)
			_, err = part.Write([]byte("\x89PNG fake image data"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/upload", &body)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

func TestExtractRequest_Form(t *testing.T) {
	r := formRequest("name=Pieter&email=&nick=+++&tags=a&tags=b")

	data, err := fv.ExtractRequest(r, fv.DefaultRequestConfig())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":  "Pieter",
		"email": nil,
		"nick":  nil,
		"tags":  []string{"a", "b"},
	}, data, "query parameters are not body fields")
}

func TestExtractRequest_QueryDoesNotMixIntoBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/signup?name=x&extra=1", strings.NewReader("name=Pieter"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	data, err := fv.ExtractRequest(r, fv.DefaultRequestConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Pieter"}, data)

	mr := multipartRequest(t, map[string]string{"title": "Holiday"}, nil)
	mr.URL.RawQuery = "title=other&page=2"
	data, err = fv.ExtractRequest(mr, fv.DefaultRequestConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Holiday"}, data)

	v := fv.MustNew(fv.Field("name", fv.NotNull(), fv.Alphabetic()))
	r = httptest.NewRequest(http.MethodPost, "/signup?name=x", strings.NewReader("name=Pieter"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ok, err := v.ValidateRequest(r)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Pieter", v.Data()["name"])
}

func TestExtractRequest_Query(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/search?q=go&page=2", nil)

	data, err := fv.ExtractRequest(r, fv.DefaultRequestConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"q": "go", "page": "2"}, data)
}

func TestExtractRequest_Multipart(t *testing.T) {
	r := multipartRequest(t,
		map[string]string{"title": "Holiday", "avatar": "overridden", "note": ""},
		map[string][]string{"avatar": {"me.png"}, "photos": {"a.png", "b.png"}},
	)

	data, err := fv.ExtractRequest(r, fv.DefaultRequestConfig())
	require.NoError(t, err)

	assert.Equal(t, "Holiday", data["title"])
	assert.Nil(t, data["note"])

	avatar, ok := data["avatar"].(fv.UploadedFile)
	require.True(t, ok, "file overrides the form value")
	assert.Equal(t, "me.png", avatar.Filename())
	assert.Equal(t, "image/png", avatar.MediaType())
	assert.Equal(t, int64(len("\x89PNG fake image data")), avatar.Size())

	photos, ok := data["photos"].([]fv.UploadedFile)
	require.True(t, ok)
	require.Len(t, photos, 2)
	assert.Equal(t, "a.png", photos[0].Filename())
	assert.Equal(t, "b.png", photos[1].Filename())
}

func TestExtractRequest_JSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age": 21, "name": " ", "tags": ["a"]}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	data, err := fv.ExtractRequest(r, fv.DefaultRequestConfig())
	require.NoError(t, err)

	assert.Equal(t, json.Number("21"), data["age"])
	assert.Nil(t, data["name"])
	assert.Equal(t, []any{"a"}, data["tags"])
}

func TestExtractRequest_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		cfg         fv.RequestConfig
		want        error
	}{
		{name: "unsupported", contentType: "text/plain", body: "hello", want: fv.ErrUnsupportedMediaType},
		{name: "malformed content type", contentType: "multipart/", body: "", want: fv.ErrInvalidForm},
		{name: "broken json", contentType: "application/json", body: `{"a":`, want: fv.ErrInvalidForm},
		{name: "json not an object", contentType: "application/json", body: `[1, 2]`, want: fv.ErrInvalidForm},
		{
			name:        "json too large",
			contentType: "application/json",
			body:        `{"name": "a long value"}`,
			cfg:         fv.RequestConfig{MaxJSONBytes: 8},
			want:        fv.ErrInvalidForm,
		},
		{name: "multipart without boundary", contentType: "multipart/form-data", body: "x", want: fv.ErrInvalidForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			_, err := fv.ExtractRequest(r, tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidator_ValidateRequest(t *testing.T) {
	v := fv.MustNew(
		fv.Field("name", fv.NotNull(), fv.Alphabetic()),
		fv.Field("email", fv.AnyOf(fv.Not(fv.NotNull()), fv.Email())),
		fv.Field("age", fv.Integer().SetMinValue(18)),
	)

	ok, err := v.ValidateRequest(formRequest("name=Pieter&email=&age=21"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.ValidateRequest(formRequest("name=&email=nope&age=12"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, map[string][]string{
		"name":  {"value of field 'name' should not be null"},
		"email": {"value does not meet validation criteria"},
		"age":   {"12 should be 18 or more"},
	}, v.Errors())

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	r.Header.Set("Content-Type", "text/csv")
	ok, err = v.ValidateRequest(r)
	assert.False(t, ok)
	assert.ErrorIs(t, err, fv.ErrUnsupportedMediaType)
}

func TestValidator_ValidateRequestUpload(t *testing.T) {
	v := fv.MustNew(
		fv.Field("avatar", fv.NotNull(), fv.FileUpload().SetMaxSize(1024).SetMimeTypes("image/png")),
		fv.Field("photos", fv.Each(fv.FileUpload().SetMimeTypes("image/jpeg"))),
	)

	ok, err := v.ValidateRequest(multipartRequest(t, nil, map[string][]string{"avatar": {"me.png"}}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.ValidateRequest(multipartRequest(t, nil, map[string][]string{
		"avatar": {"me.png"},
		"photos": {"a.png", "b.png"},
	}))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t,
		[]string{"item 0: the mime type 'image/png' of the file is not allowed; allowed mime types are: image/jpeg."},
		v.Errors()["photos"],
	)
}
