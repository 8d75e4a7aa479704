package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// ScalarScriptURL is the CDN bundle of the Scalar API reference.
const ScalarScriptURL = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"

// DocsContentSecurityPolicy lets the reference page load its bundle from the CDN.
const DocsContentSecurityPolicy = "default-src 'none'; " +
	"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net https://fonts.googleapis.com; " +
	"font-src 'self' data: https://cdn.jsdelivr.net https://fonts.gstatic.com; " +
	"img-src 'self' data: https:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'"

var docsPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html>
  <head>
    <title>{{.Title}}</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="{{.SpecURL}}"></script>
    <script src="{{.ScriptURL}}"></script>
  </body>
</html>
`))

// DocsHandler serves the OpenAPI document and the reference page.
// Both bodies are rendered once at construction.
type DocsHandler struct {
	spec []byte
	page []byte
}

// NewDocsHandler renders doc and a reference page pointed at specURL.
func NewDocsHandler(doc *openapi3.T, specURL string) (*DocsHandler, error) {
	spec, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	title := "API Reference"
	if doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}

	var page bytes.Buffer
	err = docsPage.Execute(&page, struct {
		Title     string
		SpecURL   string
		ScriptURL string
	}{title, specURL, ScalarScriptURL})
	if err != nil {
		return nil, fmt.Errorf("render docs page: %w", err)
	}

	return &DocsHandler{spec: spec, page: page.Bytes()}, nil
}

// Spec serves the OpenAPI document.
// GET /spec.json
func (h *DocsHandler) Spec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.spec)
}

// Page serves the interactive API reference.
// GET /docs
func (h *DocsHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Security-Policy", DocsContentSecurityPolicy)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}
