package assembler

import (
	"strings"

	"github.com/Zachacious/go-restdoc/internal/config"
	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/sirupsen/logrus"
)

// Options controls which services end up in the specification.
type Options struct {
	// Private includes services whose visibility is not public.
	Private bool
	Log     logrus.FieldLogger
}

// BuildSpec constructs an openapi3.T document from the extracted services.
// Each (URL, method) pair becomes one operation; later duplicates and
// services without a known method are skipped.
func BuildSpec(reg *model.Registry, cfg *config.Config, opts Options) (*openapi3.T, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	info := cfg.Info
	if info == nil {
		info = config.Default().Info
	}
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    info,
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, rec := range reg.Records() {
		if !opts.Private && !rec.IsPublic() {
			continue
		}
		entry := log.WithFields(logrus.Fields{"class": rec.Class, "url": rec.URL})
		if rec.Method == model.MethodUnknown {
			entry.Debug("Skipping service without a known HTTP method.")
			continue
		}

		path := operationPath(rec)
		pathItem := spec.Paths.Find(path)
		if pathItem == nil {
			pathItem = &openapi3.PathItem{}
			spec.Paths.Set(path, pathItem)
		}
		if pathItem.GetOperation(string(rec.Method)) != nil {
			entry.Debugf("Skipping duplicate %s declaration.", rec.Method)
			continue
		}
		pathItem.SetOperation(string(rec.Method), buildOperation(rec))
	}

	return spec, nil
}

// operationPath appends a {name} segment for every path parameter.
func operationPath(rec *model.ServiceRecord) string {
	path := rec.URL
	for _, pp := range rec.PathParameters {
		path += "/{" + pp.Name + "}"
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}

func buildOperation(rec *model.ServiceRecord) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = summaryOf(rec.Description)
	op.Description = rec.Description
	op.Tags = []string{rec.Group}

	for _, pp := range rec.PathParameters {
		op.AddParameter(openapi3.NewPathParameter(pp.Name).
			WithDescription(pp.Description).
			WithSchema(openapi3.NewStringSchema()))
	}
	for _, qp := range rec.QueryParameters {
		op.AddParameter(openapi3.NewQueryParameter(qp.Name).
			WithDescription(qp.Description).
			WithSchema(openapi3.NewStringSchema()))
	}

	op.AddResponse(200, openapi3.NewResponse().WithDescription(rec.Return))
	op.Extensions = map[string]any{
		"x-visibility":     string(rec.Visibility),
		"x-authentication": rec.Authentication,
		"x-class":          rec.Class,
	}
	return op
}

// summaryOf returns the first sentence of a description.
func summaryOf(description string) string {
	if i := strings.Index(description, ". "); i >= 0 {
		return description[:i+1]
	}
	return description
}
