package rpc

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type empty struct{}

func noop(context.Context, empty) (map[string]any, error) {
	return map[string]any{}, nil
}

func testProc(method, path string) *Procedure {
	return New(method, path, nil, openapi3.NewObjectSchema(), noop)
}

func TestNewRegistry_Names(t *testing.T) {
	reg, err := NewRegistry(map[string]Router{
		"planet": {
			"list": testProc(http.MethodGet, "/planets"),
			"find": testProc(http.MethodGet, "/planets/{id}"),
		},
		"moon": {
			"list": testProc(http.MethodGet, "/moons"),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	var names []string
	for _, p := range reg.Procedures() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"moon.list", "planet.find", "planet.list"}, names)

	p, ok := reg.Lookup("planet.find")
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, p.Method())
	assert.Equal(t, "/planets/{id}", p.Path())

	_, ok = reg.Lookup("planet.create")
	assert.False(t, ok)
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name       string
		namespaces map[string]Router
		wantErr    error
	}{
		{
			name:       "empty namespace",
			namespaces: map[string]Router{"": {"list": testProc(http.MethodGet, "/a")}},
			wantErr:    ErrEmptyName,
		},
		{
			name:       "empty procedure name",
			namespaces: map[string]Router{"planet": {"": testProc(http.MethodGet, "/a")}},
			wantErr:    ErrEmptyName,
		},
		{
			name:       "nil procedure",
			namespaces: map[string]Router{"planet": {"list": nil}},
			wantErr:    ErrNilProcedure,
		},
		{
			name:       "relative path",
			namespaces: map[string]Router{"planet": {"list": testProc(http.MethodGet, "planets")}},
			wantErr:    ErrInvalidRoute,
		},
		{
			name:       "missing method",
			namespaces: map[string]Router{"planet": {"list": testProc("", "/planets")}},
			wantErr:    ErrInvalidRoute,
		},
		{
			name: "duplicate route across namespaces",
			namespaces: map[string]Router{
				"planet": {"list": testProc(http.MethodGet, "/planets")},
				"world":  {"list": testProc(http.MethodGet, "/planets")},
			},
			wantErr: ErrDuplicateRoute,
		},
		{
			name: "duplicate route with renamed param",
			namespaces: map[string]Router{
				"planet": {
					"find":  testProc(http.MethodGet, "/planets/{id}"),
					"fetch": testProc(http.MethodGet, "/planets/{pid:[0-9]+}"),
				},
			},
			wantErr: ErrDuplicateRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.namespaces)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoutePattern(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/planets", "/planets"},
		{"/planets/{id}", "/planets/{}"},
		{"/planets/{id:[0-9]{1,3}}", "/planets/{}"},
		{"/planets/{id}/moons/{moon}", "/planets/{}/moons/{}"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routePattern(tt.path))
		})
	}
}

func TestNewRegistry_SameRouteDifferentMethods(t *testing.T) {
	_, err := NewRegistry(map[string]Router{
		"planet": {
			"list":   testProc(http.MethodGet, "/planets"),
			"create": testProc(http.MethodPost, "/planets"),
		},
	})
	assert.NoError(t, err)
}

func TestNewRegistry_CopiesProcedures(t *testing.T) {
	original := testProc(http.MethodGet, "/planets")
	router := Router{"list": original}

	reg, err := NewRegistry(map[string]Router{"planet": router})
	require.NoError(t, err)

	router["find"] = testProc(http.MethodGet, "/planets/{id}")
	WithSecurity(BearerAuth)(original)

	assert.Equal(t, 1, reg.Len())
	p, ok := reg.Lookup("planet.list")
	require.True(t, ok)
	assert.Empty(t, p.Security())
	assert.Empty(t, original.Name())
}
