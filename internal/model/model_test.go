package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := map[string]Method{
		"Get":     MethodGet,
		"post":    MethodPost,
		" PUT ":   MethodPut,
		"delete":  MethodDelete,
		"Head":    MethodUnknown,
		"":        MethodUnknown,
		"UNKNOWN": MethodUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseMethod(in), in)
	}
}

func TestParseVisibility(t *testing.T) {
	assert.Equal(t, Public, ParseVisibility("public"))
	assert.Equal(t, Public, ParseVisibility("Public"))
	assert.Equal(t, Private, ParseVisibility("private"))
	assert.Equal(t, Private, ParseVisibility("internal"))
	assert.Equal(t, Private, ParseVisibility(""))
}

func TestNewServiceRecordDefaults(t *testing.T) {
	r := NewServiceRecord()
	assert.Equal(t, MethodUnknown, r.Method)
	assert.Equal(t, NoAuthentication, r.Authentication)
	assert.Equal(t, UndocumentedCall, r.Description)
	assert.Equal(t, UndocumentedReturn, r.Return)
	assert.Equal(t, Private, r.Visibility)
	assert.NotNil(t, r.PathParameters)
	assert.NotNil(t, r.QueryParameters)
	assert.False(t, r.Processed)
	assert.False(t, r.IsPublic())
}

func TestRegistryPending(t *testing.T) {
	reg := NewRegistry()
	get := &ServiceRecord{URL: "/a", Method: MethodGet}
	dup := &ServiceRecord{URL: "/a", Method: MethodGet}
	post := &ServiceRecord{URL: "/a", Method: MethodPost}
	other := &ServiceRecord{URL: "/b", Method: MethodGet}
	reg.Append(get, dup, post, other)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []*ServiceRecord{get, dup}, reg.Pending("/a", MethodGet))

	reg.MarkProcessed(get)
	assert.Equal(t, []*ServiceRecord{dup}, reg.Pending("/a", MethodGet))

	reg.Reset()
	assert.Len(t, reg.Pending("/a", MethodGet), 2)
}

func TestRegistryPublicURLsByGroup(t *testing.T) {
	reg := NewRegistry()
	reg.Append(
		&ServiceRecord{Group: "files", URL: "/z", Visibility: Public},
		&ServiceRecord{Group: "files", URL: "/a", Visibility: Public},
		&ServiceRecord{Group: "files", URL: "/a", Visibility: Public},
		&ServiceRecord{Group: "files", URL: "/hidden", Visibility: Private},
		&ServiceRecord{Group: "session", URL: "/s", Visibility: Private},
	)

	assert.Equal(t, map[string][]string{
		"files":   {"/a", "/z"},
		"session": {},
	}, reg.PublicURLsByGroup())
}
