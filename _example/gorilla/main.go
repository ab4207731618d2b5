// Command gorilla demonstrates fieldvalidation with a gorilla/mux router.
//
// Run:
//
//	cd _example/gorilla && go run .
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/gorilla/mux"
)

func searchForm() *v.Validator {
	return v.MustNew(
		v.Field("q", v.NotNull(), v.StringLength().SetMinLength(2)),
		v.Field("page", v.Integer().SetMinValue(1)),
		v.Field("sort", v.Choice("asc", "desc")),
	)
}

func main() {
	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates fieldvalidation with gorilla/mux", "0.1.0")

	openapi.Get(doc, "/search", "search", openapi.Endpoint{
		Summary:  "Search",
		Form:     searchForm(),
		Response: []string{},
	})

	r := mux.NewRouter()
	r.Handle("/docs.json", openapi.DocsHandlerMust(doc))
	r.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		form := searchForm()
		ok, err := form.ValidateRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(openapi.ValidationErrorResponse{Errors: form.Errors()})
			return
		}
		_ = json.NewEncoder(w).Encode([]string{})
	}).Methods(http.MethodGet)

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
