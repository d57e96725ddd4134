package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	cause := stderrors.New("connection refused")
	err := Wrap(cause, "failed to connect to database")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeInternalError, appErr.Code)
	assert.Equal(t, "failed to connect to database: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapKeepsAppErrorCode(t *testing.T) {
	inner := ExtractError("no header row found in test.xlsx")
	err := Wrap(inner, "file failed")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeExtractError, appErr.Code)
	assert.ErrorIs(t, err, inner)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeConfigInvalid, ConfigInvalid("DATABASE_URL is required").Code)
	assert.Equal(t, CodeExtractError, ExtractError("bad workbook").Code)

	nf := NotFound("university")
	assert.Equal(t, CodeNotFound, nf.Code)
	assert.Equal(t, "university not found", nf.Error())
}
