package config_test

import (
	"testing"
	"time"

	"github.com/limbo/codestreak/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("CS_TEST_INT", "42")
	t.Setenv("CS_TEST_BAD_INT", "forty")
	t.Setenv("CS_TEST_FLOAT", "2.5")
	t.Setenv("CS_TEST_BOOL", "true")
	t.Setenv("CS_TEST_DURATION", "90s")
	t.Setenv("CS_TEST_EMPTY", "")

	assert.Equal(t, 42, cfg.GetInt("CS_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("CS_TEST_BAD_INT", 1))
	assert.Equal(t, 7, cfg.GetInt("CS_TEST_MISSING", 7))
	assert.Equal(t, 2.5, cfg.GetFloat("CS_TEST_FLOAT", 1))
	assert.True(t, cfg.GetBool("CS_TEST_BOOL", false))
	assert.True(t, cfg.GetBool("CS_TEST_MISSING", true))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("CS_TEST_DURATION", time.Second))
	assert.Equal(t, "UTC", cfg.GetStringOr("CS_TEST_EMPTY", "UTC"))
	assert.Equal(t, "42", cfg.GetString("CS_TEST_INT"))
}
