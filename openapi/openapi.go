package openapi

import (
	"context"
	"errors"
	"net/http"

	fv "github.com/Gobd/fieldvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	mediaTypeForm      = "application/x-www-form-urlencoded"
	mediaTypeMultipart = "multipart/form-data"
	mediaTypeJSON      = "application/json"
)

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Form        *fv.Validator       // form fields; query parameters for GET and DELETE
	Multipart   bool                // document the form as multipart/form-data
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewFormRequestMust is like [NewFormRequest] but panics on error.
func NewFormRequestMust(v *fv.Validator, multipart bool) *openapi3.RequestBodyRef {
	o, err := NewFormRequest(v, multipart)
	if err != nil {
		panic(err)
	}
	return o
}

// NewFormRequest generates a form request body from the rules of v.
func NewFormRequest(v *fv.Validator, multipart bool) (*openapi3.RequestBodyRef, error) {
	if v == nil {
		return nil, errors.New("no validator given")
	}

	schema, err := v.Schema()
	if err != nil {
		return nil, err
	}

	mediaType := mediaTypeForm
	if multipart {
		mediaType = mediaTypeMultipart
	}

	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: len(schema.Required) > 0,
			Content: openapi3.Content{
				mediaType: &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{Value: schema},
				},
			},
		},
	}, nil
}

// NewQueryParameters generates one query parameter per field of v.
func NewQueryParameters(v *fv.Validator) (openapi3.Parameters, error) {
	if v == nil {
		return nil, errors.New("no validator given")
	}

	schema, err := v.Schema()
	if err != nil {
		return nil, err
	}

	required := map[string]bool{}
	for _, name := range schema.Required {
		required[name] = true
	}

	params := make(openapi3.Parameters, 0, len(schema.Properties))
	for _, name := range v.Fields() {
		p := openapi3.NewQueryParameter(name).WithSchema(schema.Properties[name].Value)
		p.Required = required[name]
		params = append(params, &openapi3.ParameterRef{Value: p})
	}
	return params, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))

	for statusCode := range vs {
		desc := vs[statusCode].Desc

		var refs openapi3.SchemaRefs

		for k := range vs[statusCode].Bodies {
			schema, err := NewSchemaRefForValue(vs[statusCode].Bodies[k])
			if err != nil {
				return nil, err
			}
			refs = append(refs, schema)
		}

		resp := &openapi3.Response{Description: &desc}
		if len(refs) > 0 {
			content := openapi3.Content{
				mediaTypeJSON: &openapi3.MediaType{
					Schema: &openapi3.SchemaRef{
						Value: &openapi3.Schema{
							OneOf: refs,
						},
					},
				},
			}
			if len(refs) == 1 {
				content[mediaTypeJSON].Schema = refs[0]
			}
			resp.Content = content
		}

		opts = append(opts, openapi3.WithName(statusCode, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// ValidationErrorResponse is the body documented for failed validation:
// messages keyed by field, as returned by [fv.Validator.Errors].
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	if ep.Form != nil {
		if method == http.MethodGet || method == http.MethodDelete {
			params, err := NewQueryParameters(ep.Form)
			if err != nil {
				panic(err)
			}
			op.Parameters = params
		} else {
			op.RequestBody = NewFormRequestMust(ep.Form, ep.Multipart)
		}
	}

	responses := ep.Responses
	if responses == nil {
		responses = map[string]Response{}
		if ep.Response != nil {
			responses["200"] = Response{Desc: "OK", Bodies: []any{ep.Response}}
		}
		if ep.Form != nil {
			responses["422"] = Response{Desc: "Validation failed", Bodies: []any{ValidationErrorResponse{}}}
		}
	}
	if len(responses) > 0 {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc. Form fields become query parameters.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc. Form fields become query parameters.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}

// DocsHandler validates doc and returns an http.Handler serving it as JSON.
func DocsHandler(doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", mediaTypeJSON)
		_, _ = w.Write(specJSON)
	}), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(doc *openapi3.T) http.Handler {
	h, err := DocsHandler(doc)
	if err != nil {
		panic(err)
	}
	return h
}
