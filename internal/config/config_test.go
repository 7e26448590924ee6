package config

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	got := splitList(" http://localhost:3000, https://pos.example.com ,,")
	want := []string{"http://localhost:3000", "https://pos.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestFileMode(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"production with mongo", Config{App: AppConfig{Env: "production"}, Mongo: MongoConfig{URI: "mongodb://db"}}, false},
		{"flag set", Config{Storage: StorageConfig{UseFile: true}, Mongo: MongoConfig{URI: "mongodb://db"}}, true},
		{"development", Config{App: AppConfig{Env: "Development"}, Mongo: MongoConfig{URI: "mongodb://db"}}, true},
		{"no uri", Config{App: AppConfig{Env: "production"}}, true},
	}
	for _, tc := range cases {
		if got := tc.cfg.FileMode(); got != tc.want {
			t.Errorf("%s: FileMode() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStoragePaths(t *testing.T) {
	s := StorageConfig{DataDir: "data"}
	if s.SalesFile() != "data/sales.json" || s.OrdersFile() != "data/orders.json" {
		t.Fatalf("unexpected paths %q %q", s.SalesFile(), s.OrdersFile())
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PRINTER_TYPE", "Network")
	t.Setenv("PRINTER_ADDRESS", "192.168.1.50:9100")
	t.Setenv("DATA_DIR", "/var/lib/fng")
	t.Setenv("IDEMPOTENCY_DB_DSN", "")

	cfg := Load()

	if cfg.Printer.Type != "network" || cfg.Printer.Address != "192.168.1.50:9100" {
		t.Errorf("unexpected printer config %+v", cfg.Printer)
	}
	if cfg.Printer.Width != 32 || cfg.Printer.StoreName != "Froze and Grill" {
		t.Errorf("unexpected printer defaults %+v", cfg.Printer)
	}
	if cfg.Idempotency.DSN != "/var/lib/fng/idempotency.db" {
		t.Errorf("expected DSN under DATA_DIR, got %q", cfg.Idempotency.DSN)
	}
	if cfg.Auth.Audience != "fng-app" || cfg.Auth.Issuer != "fng-login-app" {
		t.Errorf("unexpected auth defaults %+v", cfg.Auth)
	}
}
