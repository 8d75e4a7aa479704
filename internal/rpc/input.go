package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
)

// pathParams returns the {name} segments of a route template in order.
func pathParams(path string) []string {
	var names []string
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			name := strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
			// chi allows {name:regex}
			if i := strings.IndexByte(name, ':'); i >= 0 {
				name = name[:i]
			}
			names = append(names, name)
		}
	}
	return names
}

// coerce converts a raw string from the path or query to the JSON value the
// property schema expects. Values that do not parse are returned unchanged so
// the validator reports them.
func coerce(prop *openapi3.Schema, raw string) any {
	if prop == nil || prop.Type == nil {
		return raw
	}
	switch {
	case prop.Type.Is(openapi3.TypeInteger):
		// Out of int64 range stays a string and fails the type check.
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return float64(n)
		}
	case prop.Type.Is(openapi3.TypeNumber):
		if n, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return n
		}
	case prop.Type.Is(openapi3.TypeBoolean):
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}

func property(schema *openapi3.Schema, name string) *openapi3.Schema {
	if schema == nil {
		return nil
	}
	ref, ok := schema.Properties[name]
	if !ok || ref == nil {
		return nil
	}
	return ref.Value
}

// collectInput assembles the raw input object for a request:
// the JSON body (when the method allows one) or the query string,
// overlaid with path parameters.
func (p *Procedure) collectInput(r *http.Request) (any, error) {
	var value any

	if p.bodyAllowed() {
		body, err := decodeBody(r)
		if err != nil {
			return nil, err
		}
		value = body
	} else {
		fields := make(map[string]any)
		query := r.URL.Query()
		for name, values := range query {
			if len(values) == 0 || values[0] == "" {
				continue
			}
			fields[name] = coerce(property(p.input, name), values[0])
		}
		value = fields
	}

	params := pathParams(p.path)
	if len(params) > 0 {
		fields, ok := value.(map[string]any)
		if !ok {
			return value, nil
		}
		for _, name := range params {
			fields[name] = coerce(property(p.input, name), chi.URLParam(r, name))
		}
	}

	return value, nil
}

func decodeBody(r *http.Request) (any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(r.Body)
	var body any
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, bodyError(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, bodyError(err)
	}
	return body, nil
}

func bodyError(err error) *Error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrBodyTooLarge.Wrap(err)
	}
	return ErrInvalidBody.Wrap(err)
}

// applyDefaults fills missing top-level properties that declare a default.
func applyDefaults(schema *openapi3.Schema, value any) {
	fields, ok := value.(map[string]any)
	if !ok || schema == nil {
		return
	}
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil || ref.Value.Default == nil {
			continue
		}
		if _, present := fields[name]; !present {
			fields[name] = ref.Value.Default
		}
	}
}

// validate checks value against schema and converts failures into issues.
func validate(schema *openapi3.Schema, value any) []dto.Issue {
	if schema == nil {
		return nil
	}
	err := schema.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	issues := collectIssues(err, nil)
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

func collectIssues(err error, issues []dto.Issue) []dto.Issue {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			issues = collectIssues(inner, issues)
		}
		return issues
	case *openapi3.SchemaError:
		return append(issues, dto.Issue{
			Path:    strings.Join(e.JSONPointer(), "."),
			Message: e.Reason,
		})
	default:
		return append(issues, dto.Issue{Message: err.Error()})
	}
}

// normalize round-trips v through JSON so it only contains JSON value types.
func normalize(v any) (any, []byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, nil, fmt.Errorf("unmarshal: %w", err)
	}
	return out, data, nil
}
