package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skel/pkg/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad document")
	assert.Equal(t, "[CONFIG_PARSE] bad document", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("underlying"), errors.ErrConfigLoad, "failed to read")
	assert.Equal(t, "[CONFIG_LOAD] failed to read: underlying", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrConfigLoad, "ignored %d", 1))
}

func TestErrorCodeMatching(t *testing.T) {
	err := errors.Newf(errors.ErrCycleDetected, "dependency cycle among: %s", "a, b")

	assert.True(t, errors.IsErrorCode(err, errors.ErrCycleDetected))
	assert.False(t, errors.IsErrorCode(err, errors.ErrUnknownDependency))
	assert.Equal(t, errors.ErrCycleDetected, errors.GetErrorCode(err))

	// wrapped in a plain error, the code still resolves
	outer := fmt.Errorf("while planning: %w", err)
	assert.True(t, errors.IsErrorCode(outer, errors.ErrCycleDetected))
	assert.Equal(t, errors.ErrCycleDetected, errors.GetErrorCode(outer))

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrUnknownDependency, "unknown dependency").
		WithDetail("from", "a").
		WithDetail("to", "b")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "a", details["from"])
	assert.Equal(t, "b", details["to"])

	assert.Nil(t, errors.GetErrorDetails(fmt.Errorf("plain")))
}

func TestNewConfigCarriesDocument(t *testing.T) {
	doc := `root "/"`
	err := errors.NewConfig(errors.ErrMissingArgument, "root", doc, "missing required argument")

	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
	assert.Contains(t, err.Error(), `node "root"`)
	assert.Equal(t, "root", err.Details["node"])
	assert.Equal(t, doc, err.Details["document"])
}
