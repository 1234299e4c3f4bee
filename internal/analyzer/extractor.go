package analyzer

import (
	"strings"

	"github.com/Zachacious/go-restdoc/internal/config"
	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/Zachacious/go-restdoc/internal/scan"
	"github.com/sirupsen/logrus"
)

const docOpen = "/**"

// Resource identifies a resource registration found in a service source.
type Resource struct {
	// PartialURL is the path given to the registration call.
	PartialURL string
	Group      string
	Class      string
	// File is the source path, used for diagnostics only.
	File string
}

// ExtractServices reads the declaration span that follows a resource
// registration at pos and returns one record per brace-delimited declaration
// inside it, in the order they appear. Extraction never fails: missing
// markers fall back to defaults and missing documentation is logged.
func ExtractServices(text string, pos int, res Resource, markers config.Markers, log logrus.FieldLogger) []*model.ServiceRecord {
	var services []*model.ServiceRecord

	span := scan.NewCursor(text).Seek(pos).Scope('{', '}', 1)
	cur := scan.NewCursor(span)

	for !cur.Done() {
		open := cur.Index("{")
		if open == scan.NotFound {
			break
		}
		at := cur.Seek(open)

		// The comment for this declaration must follow the end of the
		// previous one.
		boundary := at.LastIndex("}", 0)
		if boundary == scan.NotFound {
			boundary = 0
		}
		docText := ""
		if d := at.LastIndex(docOpen, boundary); d != scan.NotFound {
			docText = at.Slice(d, open)
		}

		body := at.Advance(1).Scope('{', '}', 1)
		cur = at.Advance(len(body) + 1)

		services = append(services, buildService(docText, body, res, markers, log))
	}

	return services
}

func buildService(docText, body string, res Resource, markers config.Markers, log logrus.FieldLogger) *model.ServiceRecord {
	doc := ParseServiceDoc(docText)

	svc := model.NewServiceRecord()
	svc.Description = doc.Description
	svc.Visibility = doc.Visibility
	svc.Return = doc.Return
	svc.PathParameters = doc.PathParameters
	svc.QueryParameters = doc.QueryParameters

	if strings.TrimSpace(svc.Description) == "" {
		svc.Description = model.UndocumentedDescription
		log.WithFields(logrus.Fields{
			"file":  res.File,
			"class": res.Class,
			"url":   res.PartialURL,
		}).Warnf("%s %s is undocumented.", res.Class, res.PartialURL)
	}

	b := scan.NewCursor(body)
	if v, ok := markerValue(b, markers.Message); ok {
		svc.Method = model.ParseMethod(v)
	}
	if v, ok := markerValue(b, markers.Auth); ok {
		svc.Authentication = v
	}

	svc.URL = res.PartialURL
	svc.Class = res.Class
	svc.Group = res.Group
	svc.Source = res.File
	svc.Processed = false

	return svc
}

// markerValue finds m.Marker in the body and returns the value that follows it.
func markerValue(body scan.Cursor, m config.ValueMarker) (string, bool) {
	if m.Marker == "" {
		return "", false
	}
	at, ok := body.Find(m.Marker)
	if !ok {
		return "", false
	}
	_, v, ok := at.Value(m.Start, m.End)
	return v, ok
}
