// Package openapi generates OpenAPI 3 documents for endpoints that accept
// form input checked by a [fieldvalidation.Validator]. The validator's
// rules become the request schema.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve it with [DocsHandler]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
//	    Form:     signupValidator,
//	    Response: Account{},
//	})
//	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
package openapi
