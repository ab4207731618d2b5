// Command chi demonstrates fieldvalidation with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/docs.json in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/go-chi/chi/v5"
)

func uploadForm() *v.Validator {
	return v.MustNew(
		v.Field("title", v.NotNull(), v.StringLength().SetMaxLength(120)),
		v.Field("avatar", v.FileUpload().SetMaxSize(2<<20).SetMimeTypes("image/png", "image/jpeg")),
	)
}

func main() {
	doc := openapi.DocBase("Example API (chi)", "Demonstrates fieldvalidation with chi", "0.1.0")

	openapi.Post(doc, "/avatars", "uploadAvatar", openapi.Endpoint{
		Summary:   "Upload an avatar",
		Form:      uploadForm(),
		Multipart: true,
	})

	r := chi.NewRouter()

	r.Handle("/docs.json", openapi.DocsHandlerMust(doc))

	r.Post("/avatars", func(w http.ResponseWriter, r *http.Request) {
		form := uploadForm()
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
		_ = json.NewEncoder(w).Encode(map[string]any{"title": form.Data()["title"]})
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
