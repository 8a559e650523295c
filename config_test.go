package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"/", ""},
		{"portfolio", "/portfolio"},
		{"/portfolio/", "/portfolio"},
		{" /a/b/ ", "/a/b"},
	}
	for _, tt := range tests {
		if got := normalizeBasePath(tt.in); got != tt.want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BASE_PATH", "site/")
	t.Setenv("VISIT_RETENTION", "48h")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.BasePath != "/site" {
		t.Errorf("BasePath = %q", cfg.BasePath)
	}
	if cfg.Retention != 48*time.Hour {
		t.Errorf("Retention = %v", cfg.Retention)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword == "" {
		t.Error("admin defaults not applied")
	}

	t.Setenv("VISIT_RETENTION", "soon")
	if cfg := loadConfig(); cfg.Retention != defaultRetention {
		t.Errorf("invalid retention accepted: %v", cfg.Retention)
	}
}

func TestLoadProfile(t *testing.T) {
	p, err := loadProfile("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != Name || len(p.Socials) != 3 || p.Primary().Text != "View My Work" {
		t.Errorf("default profile = %+v", p)
	}
	if strings.Contains(p.Bio, "\n") {
		t.Error("bio not collapsed to one line")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	yaml := `name: Ada Example
title: Technical Artist
socials:
  - label: Email
    href: mailto:ada@example.com
    icon: mail
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = loadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ada Example" || p.Title != "Technical Artist" {
		t.Errorf("override not applied: %+v", p)
	}
	if p.Username != Username {
		t.Errorf("Username = %q, want default", p.Username)
	}
	if len(p.Socials) != 1 || p.Socials[0].IconPath() == "" {
		t.Errorf("Socials = %+v", p.Socials)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("socials:\n  - label: X\n    icon: myspace\n"), 0o644)
	if _, err := loadProfile(bad); err == nil {
		t.Error("unknown icon accepted")
	}
	if _, err := loadProfile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestExportSite(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(filepath.Join(cfg.StaticDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(cfg.StaticDir, "site.css"), []byte("body{}"), 0o644)
	os.WriteFile(filepath.Join(cfg.StaticDir, "img", "star.svg"), []byte("<svg/>"), 0o644)

	out := filepath.Join(t.TempDir(), "out")
	if err := exportSite(out, cfg, defaultProfile()); err != nil {
		t.Fatalf("exportSite: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "Paige Laskey") || !strings.Contains(string(index), "/portfolio/static/site.css") {
		t.Error("exported index.html is missing content")
	}
	for _, name := range []string{"site.css", filepath.Join("img", "star.svg")} {
		if _, err := os.Stat(filepath.Join(out, "static", name)); err != nil {
			t.Errorf("asset %s not copied: %v", name, err)
		}
	}

	if strings.Contains(string(index), "starfield.wasm") {
		t.Error("index.html loads starfield.wasm that was never built")
	}

	for _, name := range []string{"starfield.wasm", "wasm_exec.js"} {
		os.WriteFile(filepath.Join(cfg.StaticDir, name), []byte("//"), 0o644)
	}
	out = filepath.Join(t.TempDir(), "out")
	if err := exportSite(out, cfg, defaultProfile()); err != nil {
		t.Fatalf("exportSite with wasm: %v", err)
	}
	index, err = os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "starfield.wasm") || !strings.Contains(string(index), "/portfolio/static/wasm_exec.js") {
		t.Error("exported index.html does not load the wasm build")
	}
	for _, name := range []string{"starfield.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(out, "static", name)); err != nil {
			t.Errorf("%s not exported: %v", name, err)
		}
	}

	cfg.StaticDir = filepath.Join(t.TempDir(), "nope")
	if err := exportSite(t.TempDir(), cfg, defaultProfile()); err != nil {
		t.Errorf("missing static dir: %v", err)
	}
}
