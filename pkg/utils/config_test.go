package utils

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.Len(t, config.ToMap(), 0)
	})

	t.Run("with values", func(t *testing.T) {
		values := map[string]string{
			"key1": "value1",
			"key2": "value2",
		}
		config := NewConfig(values)

		assert.Equal(t, "value1", config.Get("key1"))
		assert.Equal(t, "value2", config.Get("key2"))

		// Verify it's a copy, not a reference
		values["key1"] = "modified"
		assert.NotEqual(t, "modified", config.Get("key1"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	// Create a temporary .env file for testing
	envContent := "TEST_INTERVIEW_KEY1=test_value1\nTEST_INTERVIEW_KEY2=test_value2\n"
	tmpFile, err := os.CreateTemp("", "test_env_*.env")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())
	defer os.Unsetenv("TEST_INTERVIEW_KEY1")
	defer os.Unsetenv("TEST_INTERVIEW_KEY2")

	_, err = tmpFile.WriteString(envContent)
	require.NoError(t, err)
	tmpFile.Close()

	config := NewConfigFromEnv(tmpFile.Name())

	require.NotNil(t, config)
	assert.Equal(t, "test_value1", config.Get("TEST_INTERVIEW_KEY1"))
	assert.Equal(t, "test_value2", config.Get("TEST_INTERVIEW_KEY2"))
}

func TestConfig_GetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"set":   "value",
		"empty": "",
	})

	tests := []struct {
		name         string
		key          string
		defaultValue string
		want         string
	}{
		{name: "existing key", key: "set", defaultValue: "fallback", want: "value"},
		{name: "empty value falls back", key: "empty", defaultValue: "fallback", want: "fallback"},
		{name: "missing key falls back", key: "missing", defaultValue: "fallback", want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.GetWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestConfig_GetBool(t *testing.T) {
	config := NewConfig(map[string]string{
		"true_val":  "true",
		"false_val": "false",
		"yes_val":   "yes",
		"on_val":    "on",
		"junk_val":  "definitely",
	})

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "true", key: "true_val", want: true},
		{name: "false", key: "false_val", want: false},
		{name: "yes", key: "yes_val", want: true},
		{name: "on", key: "on_val", want: true},
		{name: "unparsable", key: "junk_val", want: false},
		{name: "missing", key: "missing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.GetBool(tt.key))
		})
	}
}

func TestConfig_GetInt(t *testing.T) {
	config := NewConfig(map[string]string{
		"number": "42",
		"junk":   "not-a-number",
	})

	assert.Equal(t, 42, config.GetInt("number"))
	assert.Equal(t, 0, config.GetInt("junk"))
	assert.Equal(t, 0, config.GetInt("missing"))

	assert.Equal(t, 42, config.GetIntWithDefault("number", 7))
	assert.Equal(t, 7, config.GetIntWithDefault("missing", 7))
}

func TestConfig_SetAndHas(t *testing.T) {
	config := NewConfig(nil)

	assert.False(t, config.Has("key"))

	config.Set("key", "value")

	assert.True(t, config.Has("key"))
	assert.Equal(t, "value", config.Get("key"))
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	config := NewConfig(map[string]string{"shared": "initial"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			config.Set("shared", "updated")
		}()
		go func() {
			defer wg.Done()
			_ = config.Get("shared")
		}()
	}
	wg.Wait()

	assert.Contains(t, []string{"initial", "updated"}, config.Get("shared"))
}
