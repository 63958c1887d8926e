package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOLDSCAN_MIN_AREA", "")
	t.Setenv("HOLDSCAN_MAX_UPLOAD_MB", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port: got %s, want 8080", cfg.Port)
	}
	if cfg.MinArea != 100 {
		t.Errorf("min area: got %d, want 100", cfg.MinArea)
	}
	if cfg.MaxUploadMB != 10 {
		t.Errorf("upload cap: got %d, want 10", cfg.MaxUploadMB)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOLDSCAN_MIN_AREA", "250")
	t.Setenv("HOLDSCAN_MAX_UPLOAD_MB", "25")
	t.Setenv("HOLDSCAN_OUTPUT_DIR", "/tmp/holds")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("port: got %s, want 9000", cfg.Port)
	}
	if cfg.MinArea != 250 {
		t.Errorf("min area: got %d, want 250", cfg.MinArea)
	}
	if cfg.MaxUploadMB != 25 {
		t.Errorf("upload cap: got %d, want 25", cfg.MaxUploadMB)
	}
	if cfg.OutputDir != "/tmp/holds" {
		t.Errorf("output dir: got %s", cfg.OutputDir)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("HOLDSCAN_MIN_AREA", "not-a-number")

	cfg := Load()
	if cfg.MinArea != 100 {
		t.Errorf("min area with bad env: got %d, want default 100", cfg.MinArea)
	}
}
