package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIGN_UP_URL", "http://any-url.com/signup")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("HTTP_REQUEST_TIMEOUT")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load(missingEnvFile(t))

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("http://any-url.com/signup", cfg.SignUpURL.String())
	assert.Equal(time.Duration(0), cfg.HttpRequestTimeout)
	assert.Equal("info", cfg.LogLevel)
}

func TestLoadAllValues(t *testing.T) {
	t.Setenv("SIGN_UP_URL", "https://api.example.com/signup")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(missingEnvFile(t))

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("api.example.com", cfg.SignUpURL.Host)
	assert.Equal(5*time.Second, cfg.HttpRequestTimeout)
	assert.Equal("debug", cfg.LogLevel)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("SIGN_UP_URL", "")
	os.Unsetenv("SIGN_UP_URL")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "SIGN_UP_URL=http://from-file.com/signup\nLOG_LEVEL=debug\n"
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("from-file.com", cfg.SignUpURL.Host)
	assert.Equal("warn", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		id      string
		url     string
		timeout string
	}{
		{id: "missing url", url: "", timeout: "0s"},
		{id: "relative url", url: "/signup", timeout: "0s"},
		{id: "unsupported scheme", url: "ftp://any-url.com", timeout: "0s"},
		{id: "no host", url: "http:///signup", timeout: "0s"},
		{id: "invalid timeout", url: "http://any-url.com", timeout: "soon"},
		{id: "negative timeout", url: "http://any-url.com", timeout: "-1s"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			t.Setenv("SIGN_UP_URL", testcase.url)
			if testcase.url == "" {
				os.Unsetenv("SIGN_UP_URL")
			}
			t.Setenv("HTTP_REQUEST_TIMEOUT", testcase.timeout)

			_, err := Load(missingEnvFile(t))
			require.NotNil(t, err)
		})
	}
}
