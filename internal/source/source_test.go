package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"https://standards-oui.ieee.org/oui/oui.txt", true},
		{"http://example.test/oui.txt", true},
		{"/var/tmp/oui.txt", false},
		{"oui.txt", false},
		{"ftp://example.test/oui.txt", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.location); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.location, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Run("no overrides", func(t *testing.T) {
		t.Setenv(EnvURL, "")

		want := []string{primaryURL, legacyURL}
		if diff := cmp.Diff(want, Defaults("")); diff != "" {
			t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("environment overrides primary", func(t *testing.T) {
		t.Setenv(EnvURL, "http://mirror.test/oui.txt")

		want := []string{"http://mirror.test/oui.txt", legacyURL}
		if diff := cmp.Diff(want, Defaults("")); diff != "" {
			t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("config overrides primary", func(t *testing.T) {
		t.Setenv(EnvURL, "")

		want := []string{"http://configured.test/oui.txt", legacyURL}
		if diff := cmp.Diff(want, Defaults("http://configured.test/oui.txt")); diff != "" {
			t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv(EnvURL, "http://mirror.test/oui.txt")

		want := []string{"http://mirror.test/oui.txt", legacyURL}
		if diff := cmp.Diff(want, Defaults("http://configured.test/oui.txt")); diff != "" {
			t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLoad_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oui.txt")
	if err := os.WriteFile(path, []byte("registry text"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "registry text" {
		t.Errorf("Load() = %q, want %q", got, "registry text")
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("registry text"))
	}))
	defer srv.Close()

	got, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "registry text" {
		t.Errorf("Load() = %q, want %q", got, "registry text")
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Load(context.Background(), srv.URL); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestLoadFirst_FallsBackInOrder(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer broken.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("legacy text"))
	}))
	defer working.Close()

	text, location, err := LoadFirst(context.Background(), []string{broken.URL, working.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "legacy text" {
		t.Errorf("text = %q, want %q", text, "legacy text")
	}
	if location != working.URL {
		t.Errorf("location = %q, want %q", location, working.URL)
	}
}

func TestLoadFirst_AllFail(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.txt")

	_, _, err := LoadFirst(context.Background(), []string{missing, missing})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
