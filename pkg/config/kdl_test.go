package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skel/pkg/errors"
)

func TestFirstStringArg(t *testing.T) {
	fallback := func() (string, error) { return "default", nil }

	t.Run("returns the first arg", func(t *testing.T) {
		text := `root "/"`
		doc, err := parseDocument(text)
		require.NoError(t, err)

		value, err := firstStringArg(doc, text, "root", fallback)
		require.NoError(t, err)
		assert.Equal(t, "/", value)
	})

	t.Run("returns fallback for missing node", func(t *testing.T) {
		doc, err := parseDocument("")
		require.NoError(t, err)

		value, err := firstStringArg(doc, "", "root", fallback)
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("errors for missing argument", func(t *testing.T) {
		text := `root`
		doc, err := parseDocument(text)
		require.NoError(t, err)

		_, err = firstStringArg(doc, text, "root", fallback)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
	})

	t.Run("errors for non-string argument", func(t *testing.T) {
		text := `root 1.2`
		doc, err := parseDocument(text)
		require.NoError(t, err)

		_, err = firstStringArg(doc, text, "root", fallback)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidString))
	})
}

func TestVariablesFrom(t *testing.T) {
	t.Run("reads all scalar types", func(t *testing.T) {
		text := `variables {
			foo "bar"
			bar 1.2
			baz 3
			oops null
			error false
		}`
		doc, err := parseDocument(text)
		require.NoError(t, err)

		vars, err := variablesFrom(doc, text)
		require.NoError(t, err)
		assert.Len(t, vars, 5)
		assert.Equal(t, "bar", vars["foo"])
		assert.EqualValues(t, 1.2, vars["bar"])
		assert.EqualValues(t, 3, vars["baz"])
		assert.Nil(t, vars["oops"])
		assert.Equal(t, false, vars["error"])
	})

	t.Run("no variables node yields empty bindings", func(t *testing.T) {
		doc, err := parseDocument(`root "/"`)
		require.NoError(t, err)

		vars, err := variablesFrom(doc, `root "/"`)
		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("variable without a value is an error", func(t *testing.T) {
		text := `variables {
			foo
		}`
		doc, err := parseDocument(text)
		require.NoError(t, err)

		_, err = variablesFrom(doc, text)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
	})
}

func TestValueTextCoercion(t *testing.T) {
	text := `env bool=true int=1 float=2.3 str="string" nil=null`
	doc, err := parseDocument(text)
	require.NoError(t, err)

	node := findNode(doc, "env")
	require.NotNil(t, node)

	vars := propertyStrings(node)
	assert.Equal(t, map[string]string{
		"bool":  "true",
		"int":   "1",
		"float": "2.3",
		"str":   "string",
		"nil":   "null",
	}, vars)
}

func TestParseDocumentFailure(t *testing.T) {
	_, err := parseDocument(`node "unterminated`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
