package errors

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesTypeAndCode(t *testing.T) {
	err := NewInputNotFoundError("a.apk", os.ErrNotExist)
	wrapped := fmt.Errorf("analyze: %w", err)

	assert.True(t, Is(wrapped, ErrInputNotFound))
	assert.False(t, Is(wrapped, ErrInputUnreadable))
	assert.True(t, Is(wrapped, os.ErrNotExist))
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		err    error
		target error
	}{
		{NewInputUnreadableError("a.apk", New("denied")), ErrInputUnreadable},
		{NewMetadataExtractionError("androidbinary", "a.apk", New("bad zip")), ErrMetadataExtraction},
		{NewSerializationError("out.json", New("disk full")), ErrSerialization},
		{NewConfigurationError("bad value"), ErrInvalidConfig},
	}

	for _, tt := range tests {
		assert.True(t, Is(tt.err, tt.target), tt.err.Error())
	}
}

func TestError_Message(t *testing.T) {
	err := NewSerializationError("out.json", New("disk full"))
	assert.Equal(t, "failed to write report: out.json: disk full", err.Error())
	assert.Equal(t, "bad value", NewConfigurationError("bad value").Error())
}

func TestFormat(t *testing.T) {
	err := NewMetadataExtractionError("androidbinary", "a.apk", New("bad zip")).
		WithContext("stage", "components")

	plain := Format(err, false)
	assert.Equal(t, err.Error(), plain)

	detailed := Format(fmt.Errorf("wrapped: %w", err), true)
	assert.True(t, strings.HasPrefix(detailed, "PARSING error [METADATA_EXTRACTION_FAILED]"), detailed)
	assert.Contains(t, detailed, "stage: components")
	assert.Contains(t, detailed, "Underlying cause: bad zip")

	assert.Equal(t, "plain", Format(New("plain"), true))
	assert.Equal(t, "", Format(nil, true))
}
