package geoip

import (
	"net"
	"os"
	"path/filepath"
	"testing"
)

func writeCIDRFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cidrs.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write cidr file: %v", err)
	}
	return path
}

func TestInitJSONFallback(t *testing.T) {
	path := writeCIDRFile(t, `[
		{"net": "10.0.0.0/8", "country": "US", "region": "CA"},
		{"net": "192.168.1.0/24", "country": "US", "region": "TX"}
	]`)

	g, err := Init(path)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer func() { _ = g.Close() }()

	if got := g.Country(net.ParseIP("10.1.2.3")); got != "US" {
		t.Errorf("Country = %q, want US", got)
	}
	if got := g.Region(net.ParseIP("192.168.1.50")); got != "TX" {
		t.Errorf("Region = %q, want TX", got)
	}
	if got := g.Country(net.ParseIP("8.8.8.8")); got != "" {
		t.Errorf("Country for unlisted ip = %q, want empty", got)
	}
}

func TestInitRejectsGarbage(t *testing.T) {
	path := writeCIDRFile(t, "not a database")
	if _, err := Init(path); err == nil {
		t.Error("expected error for unreadable database")
	}
}

func TestInitMissingFile(t *testing.T) {
	if _, err := Init(filepath.Join(t.TempDir(), "missing.mmdb")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNilReceiver(t *testing.T) {
	var g *GeoIP
	if got := g.Country(net.ParseIP("10.0.0.1")); got != "" {
		t.Errorf("nil Country = %q, want empty", got)
	}
	if got := g.Region(net.ParseIP("10.0.0.1")); got != "" {
		t.Errorf("nil Region = %q, want empty", got)
	}
	if err := g.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}
