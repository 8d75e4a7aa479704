package rpc

import (
	"fmt"
	"net/http"
	"slices"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIVersion is the version of the generated documents.
const OpenAPIVersion = "3.0.3"

// BearerAuth is the name of the bearer token security scheme.
const BearerAuth = "bearerAuth"

const errorSchemaName = "ErrorResponse"

// DocumentInfo describes the API as a whole.
type DocumentInfo struct {
	Title       string
	Version     string
	Description string
	// ServerURL is the base path (or absolute URL) all paths are relative to.
	ServerURL string
}

// BearerScheme is the HTTP bearer security scheme declared in documents.
func BearerScheme() *openapi3.SecurityScheme {
	return &openapi3.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}

// ErrorResponseSchema is the schema of every JSON error body.
func ErrorResponseSchema() *openapi3.Schema {
	issue := openapi3.NewObjectSchema().
		WithProperty("path", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema())
	issue.Required = []string{"path", "message"}

	schema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()).
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("issues", openapi3.NewArraySchema().WithItems(issue))
	schema.Required = []string{"error", "code"}
	return schema
}

// Document describes every registered procedure as an OpenAPI document.
func (reg *Registry) Document(info DocumentInfo) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(),
	}
	if info.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: info.ServerURL}}
	}

	errorSchema := ErrorResponseSchema()
	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{
		errorSchemaName: openapi3.NewSchemaRef("", errorSchema),
	}
	components.SecuritySchemes = openapi3.SecuritySchemes{
		BearerAuth: &openapi3.SecuritySchemeRef{Value: BearerScheme()},
	}
	doc.Components = &components

	for _, p := range reg.procedures {
		for _, scheme := range p.security {
			if _, ok := components.SecuritySchemes[scheme]; !ok {
				return nil, fmt.Errorf("%s: unknown security scheme %q", p.name, scheme)
			}
		}
		doc.AddOperation(p.path, p.method, p.operation(errorSchema))
	}

	return doc, nil
}

func (p *Procedure) operation(errorSchema *openapi3.Schema) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = p.name
	op.Summary = p.summary
	op.Description = p.description
	op.Tags = append([]string(nil), p.tags...)

	params := pathParams(p.path)
	for _, name := range params {
		op.AddParameter(openapi3.NewPathParameter(name).WithSchema(property(p.input, name)))
	}

	rest := make([]string, 0, len(p.input.Properties))
	for name := range p.input.Properties {
		if !slices.Contains(params, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	if p.bodyAllowed() {
		body := openapi3.NewObjectSchema()
		for _, name := range rest {
			body.WithProperty(name, property(p.input, name))
			if slices.Contains(p.input.Required, name) {
				body.Required = append(body.Required, name)
			}
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
		}
	} else {
		for _, name := range rest {
			param := openapi3.NewQueryParameter(name).WithSchema(property(p.input, name))
			param.Required = slices.Contains(p.input.Required, name)
			op.AddParameter(param)
		}
	}

	ok := openapi3.NewResponse().WithDescription("OK")
	if p.output != nil {
		ok = ok.WithJSONSchema(p.output)
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: ok}),
	)

	codes := append([]Code(nil), p.errors...)
	if len(p.input.Properties) > 0 && !slices.Contains(codes, CodeBadRequest) {
		codes = append(codes, CodeBadRequest)
	}
	for _, code := range codes {
		resp := openapi3.NewResponse().
			WithDescription(code.Message()).
			WithJSONSchemaRef(openapi3.NewSchemaRef("#/components/schemas/"+errorSchemaName, errorSchema))
		op.Responses.Set(strconv.Itoa(code.Status()), &openapi3.ResponseRef{Value: resp})
	}

	if len(p.security) > 0 {
		req := openapi3.SecurityRequirement{}
		for _, scheme := range p.security {
			req[scheme] = []string{}
		}
		op.Security = &openapi3.SecurityRequirements{req}
	}

	return op
}
