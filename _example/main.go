// Command example demonstrates fieldvalidation with an HTTP server that
// validates a signup form and serves the OpenAPI document of the endpoint.
//
// Run:
//
//	go run ./_example
//
// Then post a form:
//
//	curl -d 'name=Alice&age=21&email=alice@example.com' http://localhost:8080/signup
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/transform"
	"github.com/joho/godotenv"
)

// Account is the response of a successful signup.
type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// signupForm returns a fresh validator; validators keep per-run state and
// are not shared between requests.
func signupForm() *v.Validator {
	return v.MustNew(
		v.Field("name", v.NotNull(), v.StringLength().SetMinLength(1).SetMaxLength(200)),
		v.Field("age", v.Integer().SetMinValue(18).SetMaxValue(130)),
		v.Field("email", v.NotNull(), v.Email()),
		v.Field("plan", v.Choice("free", "pro").SetMessage("unknown plan '{{ value }}'"), v.Default("free")),
	)
}

func main() {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := v.LoadRequestConfig()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	doc := openapi.DocBase("Example API", "Demonstrates fieldvalidation", "0.1.0")
	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
		Summary:  "Create an account",
		Form:     signupForm(),
		Response: Account{},
	})

	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))

	http.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		form := signupForm().SetLogger(logger).SetRequestConfig(cfg)
		data, err := v.ExtractRequest(r, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		transform.TrimSpace(data, "name")
		transform.ToLower(data, "email")

		w.Header().Set("Content-Type", "application/json")
		if !form.Validate(data) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(openapi.ValidationErrorResponse{Errors: form.Errors()})
			return
		}

		_ = json.NewEncoder(w).Encode(Account{
			Name:  data["name"].(string),
			Email: data["email"].(string),
		})
	})

	logger.Info("listening", slog.String("addr", "http://localhost:8080"), slog.String("docs", "http://localhost:8080/docs.json"))
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
