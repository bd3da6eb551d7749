package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ANOLINE_TEST_VAR", "from-env")
	assert.Equal(t, "from-env", GetEnv("ANOLINE_TEST_VAR", "fallback"))
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("ANOLINE_TEST_UNSET", "fallback"))
}

func TestGetEnvEmptyValueCountsAsSet(t *testing.T) {
	t.Setenv("ANOLINE_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("ANOLINE_TEST_EMPTY", "fallback"))
}
