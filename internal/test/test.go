package test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/futurehomeno/cliffhanger/manifest"
)

var (
	// Username is the qBittorrent WebUI username used in tests.
	Username = "admin"
	// Password is the qBittorrent WebUI password used in tests.
	Password = "adminadmin"
	// SessionID is the SID cookie value used in tests.
	SessionID = "abc123"
)

// LoadManifest loads and parses app manifest from default test files.
func LoadManifest(t *testing.T) *manifest.Manifest {
	t.Helper()

	f, err := os.ReadFile("./../../testdata/defaults/app-manifest.json")
	if err != nil {
		t.Fatalf("failed to load manifest from file: %+v", err)
	}

	mf := manifest.New()

	err = json.Unmarshal(f, mf)
	if err != nil {
		t.Fatalf("failed to unmarshal manifest: %+v", err)
	}

	return mf
}
