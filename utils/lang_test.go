package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeError(t *testing.T) {
	bundle = nil
	assert.Equal(t, "fallback", LocalizeError(1221, "fallback", "pt-BR"))

	require.NoError(t, InitI18NBundle("../i18n"))
	defer func() { bundle = nil }()

	assert.Equal(t, "request already responded", LocalizeError(1221, "fallback", "en"))
	assert.Equal(t, "a solicitação já foi respondida", LocalizeError(1221, "fallback", "pt-BR"))
	assert.Equal(t, "request already responded", LocalizeError(1221, "fallback", "fr"), "english is the default")
	assert.Equal(t, "fallback", LocalizeError(4242, "fallback", "en"))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("./does-not-exist"))
}
