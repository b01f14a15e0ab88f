/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dirpx.dev/clienterr/httpx"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP() != httpx.DefaultConfig() {
		t.Fatalf("api = %+v", cfg.API)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != FormatText {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	t.Setenv("TEST_API_HOST", "api.example.test")
	path := writeFile(t, `
api:
  base_url: https://${TEST_API_HOST}/v1
  timeout: 3s
logging:
  level: debug
  format: json
classifier:
  aliases:
    UnprocessableError: BusinessError
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test/v1" || cfg.API.Timeout != 3*time.Second {
		t.Fatalf("api = %+v", cfg.API)
	}
	if cfg.Logging.Format != FormatJSON || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	opts, err := cfg.ClassifierOptions()
	if err != nil || len(opts) != 1 {
		t.Fatalf("classifier options = %d, %v", len(opts), err)
	}
}

func TestLoad_BaseURLFromEnv(t *testing.T) {
	t.Setenv(BaseURLEnv, "http://backend:8080")
	cfg, err := Load(writeFile(t, "logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://backend:8080" || cfg.API.Timeout != httpx.DefaultTimeout {
		t.Fatalf("api = %+v", cfg.API)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(BaseURLEnv, "")
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"malformed yaml", "api: [", false},
		{"relative base url", "api:\n  base_url: /v1\n", true},
		{"bad format", "logging:\n  format: xml\n", true},
		{"alias to unknown kind", "classifier:\n  aliases:\n    Oops: TypeError\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalid) != tt.invalid {
				t.Fatalf("errors.Is(ErrInvalid) = %v for %v", !tt.invalid, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
}
