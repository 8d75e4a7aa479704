package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetdemo/planetdemo/internal/auth"
	"github.com/planetdemo/planetdemo/internal/rpc"
	"github.com/planetdemo/planetdemo/internal/service"
)

func newDocsHandler(t *testing.T) *DocsHandler {
	t.Helper()
	logger := discardLogger()

	planets := NewPlanetHandler(service.NewStubPlanetService(), logger)
	reg, err := rpc.NewRegistry(map[string]rpc.Router{
		"planet": planets.Router(auth.Gate(auth.StubResolver{}, logger)),
	})
	require.NoError(t, err)

	doc, err := reg.Document(rpc.DocumentInfo{Title: "Planet API", Version: "1.0.0", ServerURL: "/api"})
	require.NoError(t, err)

	h, err := NewDocsHandler(doc, "/api/spec.json")
	require.NoError(t, err)
	return h
}

func TestDocsHandler_Spec(t *testing.T) {
	h := newDocsHandler(t)

	rec := httptest.NewRecorder()
	h.Spec(rec, httptest.NewRequest(http.MethodGet, "/api/spec.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "Planet API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "/api", doc.Servers[0].URL)
	assert.NotNil(t, doc.Paths.Find("/planets").Post)
}

func TestDocsHandler_Page(t *testing.T) {
	h := newDocsHandler(t)

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, DocsContentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))

	body := rec.Body.String()
	assert.Contains(t, body, `data-url="/api/spec.json"`)
	assert.Contains(t, body, ScalarScriptURL)
	assert.Contains(t, body, "<title>Planet API</title>")
}
