// Package rpc implements schema-declared procedures served over HTTP.
//
// A Procedure binds a route (method + path) to a typed handler together with
// the input and output schemas it accepts and produces. Procedures are grouped
// into a Registry at startup; the registry mounts them on a chi router and
// describes them as an OpenAPI document.
//
// Each call runs: gates → input coercion and validation → handler → output
// validation → JSON response.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
)

// Call carries per-request data visible to gates.
type Call struct {
	Procedure  string
	Headers    http.Header
	RemoteAddr string
	Endpoint   string
	RequestID  string
}

// Gate runs before input validation and the handler.
// It either returns a (possibly enriched) context to continue with,
// or an error that aborts the call.
type Gate func(ctx context.Context, call *Call) (context.Context, error)

// Procedure is a route bound to a handler and its declared shapes.
type Procedure struct {
	name        string
	method      string
	path        string
	summary     string
	description string
	tags        []string
	input       *openapi3.Schema
	output      *openapi3.Schema
	gates       []Gate
	security    []string
	errors      []Code
	invoke      func(ctx context.Context, raw []byte) (any, error)
}

// Option configures a Procedure.
type Option func(*Procedure)

// WithSummary sets the one-line operation summary used in docs.
func WithSummary(summary string) Option {
	return func(p *Procedure) { p.summary = summary }
}

// WithDescription sets the long operation description used in docs.
func WithDescription(description string) Option {
	return func(p *Procedure) { p.description = description }
}

// WithTags groups the operation in docs.
func WithTags(tags ...string) Option {
	return func(p *Procedure) { p.tags = append(p.tags, tags...) }
}

// WithGate appends a gate. Gates run in the order they were added.
// A nil gate is ignored.
func WithGate(gate Gate) Option {
	return func(p *Procedure) {
		if gate != nil {
			p.gates = append(p.gates, gate)
		}
	}
}

// WithSecurity declares the security schemes the operation requires.
func WithSecurity(schemes ...string) Option {
	return func(p *Procedure) { p.security = append(p.security, schemes...) }
}

// WithErrors declares the error codes the operation may return, for docs.
func WithErrors(codes ...Code) Option {
	return func(p *Procedure) { p.errors = append(p.errors, codes...) }
}

// New declares a procedure. input must be an object schema (nil means no input);
// the validated input is decoded into I before handler runs. The handler result
// is checked against output before it is written.
func New[I, O any](
	method, path string,
	input, output *openapi3.Schema,
	handler func(ctx context.Context, in I) (O, error),
	opts ...Option,
) *Procedure {
	if input == nil {
		input = openapi3.NewObjectSchema()
	}

	p := &Procedure{
		method: method,
		path:   path,
		input:  input,
		output: output,
	}
	p.invoke = func(ctx context.Context, raw []byte) (any, error) {
		var in I
		if err := json.Unmarshal(raw, &in); err != nil {
			// The schema accepted a value the Go type cannot hold.
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				rpcErr := NewError(CodeBadRequest, inputValidationMessage).Wrap(err)
				rpcErr.Issues = []dto.Issue{{
					Path:    typeErr.Field,
					Message: "value does not fit " + typeErr.Type.String(),
				}}
				return nil, rpcErr
			}
			return nil, fmt.Errorf("decode validated input: %w", err)
		}
		return handler(ctx, in)
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the registry name (e.g. "planet.list"). Empty until registered.
func (p *Procedure) Name() string { return p.name }

// Method returns the HTTP method.
func (p *Procedure) Method() string { return p.method }

// Path returns the route path relative to the base path.
func (p *Procedure) Path() string { return p.path }

// Security returns the declared security schemes.
func (p *Procedure) Security() []string {
	return append([]string(nil), p.security...)
}

// bodyAllowed reports whether input fields not in the path come from a JSON body.
func (p *Procedure) bodyAllowed() bool {
	switch p.method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return false
	default:
		return true
	}
}
