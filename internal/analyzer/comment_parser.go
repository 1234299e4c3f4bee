package analyzer

import (
	"strings"

	"github.com/Zachacious/go-restdoc/internal/model"
)

// Documentation tags recognized inside a service comment.
const (
	tagPathParam  = "@pparam"
	tagQueryParam = "@qparam"
	tagVisibility = "@visibility"
	tagReturn     = "@return"
)

var serviceTags = []string{tagPathParam, tagQueryParam, tagVisibility, tagReturn}

// ParsedServiceDoc holds the structured data extracted from a service comment.
type ParsedServiceDoc struct {
	Description     string
	Visibility      model.Visibility
	Return          string
	PathParameters  []model.Parameter
	QueryParameters []model.Parameter
}

// ParseServiceDoc normalizes a raw /** ... */ block and splits it into the
// description and the @pparam, @qparam, @visibility and @return fields.
// An empty block is valid and yields an empty description.
func ParseServiceDoc(raw string) *ParsedServiceDoc {
	doc := &ParsedServiceDoc{
		Visibility:      model.Private,
		Return:          model.UndocumentedReturn,
		PathParameters:  []model.Parameter{},
		QueryParameters: []model.Parameter{},
	}

	var field strings.Builder
	for _, line := range normalizeComment(raw) {
		if tagOf(line) != "" {
			doc.apply(field.String())
			field.Reset()
		}
		field.WriteString(line)
		field.WriteByte(' ')
	}
	doc.apply(field.String())

	return doc
}

// normalizeComment drops the comment fences and continuation stars and
// collapses whitespace on every line.
func normalizeComment(raw string) []string {
	raw = strings.ReplaceAll(raw, "/**", "")
	raw = strings.ReplaceAll(raw, "*/", "")

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t\r*")
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return lines
}

func tagOf(line string) string {
	for _, tag := range serviceTags {
		if strings.HasPrefix(line, tag) {
			return tag
		}
	}
	return ""
}

// apply stores one accumulated field. Text that does not start with a
// known tag is the description.
func (d *ParsedServiceDoc) apply(text string) {
	words := strings.Fields(text)
	tag := ""
	if len(words) > 0 {
		tag = tagOf(words[0])
	}

	switch tag {
	case tagPathParam, tagQueryParam:
		if len(words) < 2 {
			return
		}
		param := model.Parameter{Name: words[1], Description: strings.Join(words[2:], " ")}
		if tag == tagPathParam {
			d.PathParameters = append(d.PathParameters, param)
		} else {
			d.QueryParameters = append(d.QueryParameters, param)
		}
	case tagVisibility:
		if len(words) > 1 {
			d.Visibility = model.ParseVisibility(words[1])
		}
	case tagReturn:
		if len(words) > 1 {
			d.Return = strings.Join(words[1:], " ")
		}
	default:
		d.Description = strings.Join(words, " ")
	}
}
