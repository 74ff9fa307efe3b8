package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateForSpeech(t *testing.T) {
	assert.Equal(t, "25 March 2025", FormatDateForSpeech("2025-03-25"))
	assert.Equal(t, "1 January 2026", FormatDateForSpeech("2026-01-01"))
	assert.Equal(t, "next tuesday", FormatDateForSpeech("next tuesday"))
	assert.Equal(t, "", FormatDateForSpeech(""))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "s", Plural(0))
	assert.Equal(t, "", Plural(1))
	assert.Equal(t, "s", Plural(2))
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, "UTC", today.Location().String())
}
