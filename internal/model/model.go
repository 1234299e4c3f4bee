package model

import "strings"

// Default text used when a declaration carries no documentation.
const (
	UndocumentedCall        = "This call is currently undocumented."
	UndocumentedDescription = "This service is currently undocumented."
	UndocumentedReturn      = "This return value is currently undocumented."
	NoAuthentication        = "None"
)

// Method is the HTTP method a declaration implements.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodUnknown Method = "UNKNOWN"
)

// Methods returns the known HTTP methods in rendering order.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodDelete}
}

// ParseMethod normalizes a message-type value such as "Get" or " delete".
// Values outside the known verbs map to MethodUnknown.
func ParseMethod(s string) Method {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m
	}
	return MethodUnknown
}

// Visibility controls whether a service is listed in the public documentation.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// ParseVisibility maps "public" to Public and anything else to Private.
func ParseVisibility(s string) Visibility {
	if strings.EqualFold(strings.TrimSpace(s), string(Public)) {
		return Public
	}
	return Private
}

// Parameter is a single documented path or query parameter.
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// ServiceRecord is one documented HTTP endpoint variant.
type ServiceRecord struct {
	// URL is the partial path as registered, completed to an absolute path
	// once the module's base URL is known.
	URL    string `yaml:"url" json:"url"`
	Method Method `yaml:"method" json:"method"`
	// Authentication is free text taken from the source, e.g. "Required".
	Authentication  string      `yaml:"authentication" json:"authentication"`
	Class           string      `yaml:"class" json:"class"`
	Group           string      `yaml:"group" json:"group"`
	Description     string      `yaml:"description" json:"description"`
	Visibility      Visibility  `yaml:"visibility" json:"visibility"`
	Return          string      `yaml:"return" json:"return"`
	PathParameters  []Parameter `yaml:"pathParameters" json:"pathParameters"`
	QueryParameters []Parameter `yaml:"queryParameters" json:"queryParameters"`
	// Processed is set by renderers once the record has been written out.
	Processed bool `yaml:"processed" json:"processed"`
	// Source is the file the record was extracted from.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
}

// NewServiceRecord returns a record with every field at its default.
func NewServiceRecord() *ServiceRecord {
	return &ServiceRecord{
		Method:          MethodUnknown,
		Authentication:  NoAuthentication,
		Description:     UndocumentedCall,
		Visibility:      Private,
		Return:          UndocumentedReturn,
		PathParameters:  []Parameter{},
		QueryParameters: []Parameter{},
	}
}

// IsPublic reports whether the record is part of the public API.
func (r *ServiceRecord) IsPublic() bool {
	return r.Visibility == Public
}
