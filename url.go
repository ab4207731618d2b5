package fieldvalidation

import (
	"net/url"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// URLRule validates absolute URLs: a scheme and a host are required,
// except for mailto, news and file URLs, which need no host.
// Nil and non-string values fail.
type URLRule struct {
	ruleBase
	message string
}

// URL returns a rule that checks that a value is an absolute URL.
func URL() *URLRule {
	return &URLRule{message: "{{ value }} is not a valid URL."}
}

// SetMessage sets the failure message. Placeholders: value.
func (r *URLRule) SetMessage(message string) *URLRule {
	r.message = message
	return r
}

func (r *URLRule) Test(value any, _ string, _ map[string]any) bool {
	s, ok := stringValue(value)
	if !ok || !govalidator.IsRequestURL(s) || !hasHost(s) {
		return r.fail(r.message, map[string]any{"value": value})
	}
	return r.pass()
}

func hasHost(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "mailto", "news", "file":
		return true
	}
	return u.Host != ""
}

func (r *URLRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeString}
	ref.Value.Format = "uri"
	return nil
}
