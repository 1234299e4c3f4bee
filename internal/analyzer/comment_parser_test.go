package analyzer

import (
	"testing"

	"github.com/Zachacious/go-restdoc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceDocTags(t *testing.T) {
	doc := ParseServiceDoc("/** line1\n * @pparam id the identifier\n * @visibility public */")

	assert.Equal(t, "line1", doc.Description)
	assert.Equal(t, []model.Parameter{{Name: "id", Description: "the identifier"}}, doc.PathParameters)
	assert.Empty(t, doc.QueryParameters)
	assert.Equal(t, model.Public, doc.Visibility)
	assert.Equal(t, model.UndocumentedReturn, doc.Return)
}

func TestParseServiceDocEmpty(t *testing.T) {
	doc := ParseServiceDoc("")

	assert.Empty(t, doc.Description)
	assert.Equal(t, model.Private, doc.Visibility)
	assert.Equal(t, model.UndocumentedReturn, doc.Return)
	assert.NotNil(t, doc.PathParameters)
	assert.NotNil(t, doc.QueryParameters)
}

func TestParseServiceDocMultiline(t *testing.T) {
	raw := `/**
       * Gets the contents of a directory
       *   given a file path.
       *
       * @qparam path the files that are contained in this path are returned.
       * @qparam nodeuser the user on the node that should perform the
       *                  requested action on the caller's behalf.
       *
       * @return an HTTP 200 code if successful, an exception if not.
       */
      `
	doc := ParseServiceDoc(raw)

	assert.Equal(t, "Gets the contents of a directory given a file path.", doc.Description)
	require.Len(t, doc.QueryParameters, 2)
	assert.Equal(t, model.Parameter{Name: "path", Description: "the files that are contained in this path are returned."}, doc.QueryParameters[0])
	assert.Equal(t, model.Parameter{
		Name:        "nodeuser",
		Description: "the user on the node that should perform the requested action on the caller's behalf.",
	}, doc.QueryParameters[1])
	assert.Equal(t, "an HTTP 200 code if successful, an exception if not.", doc.Return)
	assert.Equal(t, model.Private, doc.Visibility)
}

func TestParseServiceDocParameterOrder(t *testing.T) {
	raw := `/**
 * Updates a thing.
 * @pparam owner the owner
 * @qparam b second
 * @pparam id the thing
 * @qparam a first
 */`
	doc := ParseServiceDoc(raw)

	assert.Equal(t, []model.Parameter{
		{Name: "owner", Description: "the owner"},
		{Name: "id", Description: "the thing"},
	}, doc.PathParameters)
	assert.Equal(t, []model.Parameter{
		{Name: "b", Description: "second"},
		{Name: "a", Description: "first"},
	}, doc.QueryParameters)
}

func TestParseServiceDocSingleValuedTagsOverwrite(t *testing.T) {
	raw := `/**
 * Text.
 * @visibility public
 * @return first
 * @visibility private
 * @return second
 */`
	doc := ParseServiceDoc(raw)

	assert.Equal(t, model.Private, doc.Visibility)
	assert.Equal(t, "second", doc.Return)
}

func TestParseServiceDocTagWithoutValue(t *testing.T) {
	raw := `/**
 * Text.
 * @pparam
 * @visibility
 * @return
 */`
	doc := ParseServiceDoc(raw)

	assert.Equal(t, "Text.", doc.Description)
	assert.Empty(t, doc.PathParameters)
	assert.Equal(t, model.Private, doc.Visibility)
	assert.Equal(t, model.UndocumentedReturn, doc.Return)
}

func TestParseServiceDocOnlyTags(t *testing.T) {
	doc := ParseServiceDoc("/** @visibility public */")

	assert.Empty(t, doc.Description)
	assert.Equal(t, model.Public, doc.Visibility)
}

func TestParseServiceDocUnknownTagFoldsIntoBuffer(t *testing.T) {
	raw := `/**
 * Lists files.
 * @tags files public-api
 * @return the list
 */`
	doc := ParseServiceDoc(raw)

	assert.Equal(t, "Lists files. @tags files public-api", doc.Description)
	assert.Equal(t, "the list", doc.Return)
}
