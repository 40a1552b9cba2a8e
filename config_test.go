package main

import (
	"os"
	"path/filepath"
	"testing"

	"linedoc/pdfdoc"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.json")
		content := `{
  "title": "Meeting Notes",
  "author": "Jane Roe",
  "font": {"family": "helvetica", "style": "B"},
  "fontSize": 10,
  "paper": "a4",
  "margin": 20,
  "smtp": {"host": "smtp.example.com", "port": 465, "username": "user", "password": "secret"},
  "email": {"from": "user@example.com", "to": "team@example.com"}
}`
		os.WriteFile(configFile, []byte(content), 0644)

		cfg, err := loadConfig(configFile)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Title != "Meeting Notes" {
			t.Errorf("expected title 'Meeting Notes', got %q", cfg.Title)
		}
		if cfg.Font.Family != "helvetica" || cfg.Font.Style != "B" {
			t.Errorf("expected helvetica bold, got %+v", cfg.Font)
		}
		if cfg.FontSize != 10 {
			t.Errorf("expected font size 10, got %g", cfg.FontSize)
		}
		if cfg.Margin == nil || *cfg.Margin != 20 {
			t.Errorf("expected margin 20, got %v", cfg.Margin)
		}
		if cfg.SMTP.Port != 465 {
			t.Errorf("expected SMTP port 465, got %d", cfg.SMTP.Port)
		}
	})

	t.Run("defaults for missing fields", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.json")
		os.WriteFile(configFile, []byte(`{"title": "Short"}`), 0644)

		cfg, err := loadConfig(configFile)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Font.Family != "times" {
			t.Errorf("expected default font times, got %q", cfg.Font.Family)
		}
		if cfg.FontSize != pdfdoc.DefaultFontSize {
			t.Errorf("expected default font size %g, got %g", pdfdoc.DefaultFontSize, cfg.FontSize)
		}
		if cfg.Paper != "letter" {
			t.Errorf("expected default paper letter, got %q", cfg.Paper)
		}
		if cfg.SMTP.Port != 587 {
			t.Errorf("expected default SMTP port 587, got %d", cfg.SMTP.Port)
		}
		if cfg.LineMargin != nil {
			t.Errorf("expected no line margin override, got %v", *cfg.LineMargin)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig("/nonexistent/config.json")
		if err == nil {
			t.Error("loadConfig() expected error for missing file")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.json")
		os.WriteFile(configFile, []byte("{{invalid json"), 0644)

		_, err := loadConfig(configFile)
		if err == nil {
			t.Error("loadConfig() expected error for invalid JSON")
		}
	})

	t.Run("unknown paper", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.json")
		os.WriteFile(configFile, []byte(`{"paper": "tabloid"}`), 0644)

		_, err := loadConfig(configFile)
		if err == nil {
			t.Error("loadConfig() expected error for unknown paper")
		}
	})

	t.Run("zero font size", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.json")
		os.WriteFile(configFile, []byte(`{"fontSize": 0}`), 0644)

		_, err := loadConfig(configFile)
		if err == nil {
			t.Error("loadConfig() expected error for zero font size")
		}
	})
}

func TestConfigGeometry(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		width, height float64
		margin        float64
	}{
		{"letter default", Config{Paper: "letter"}, 215.9, 279.4, 25.4},
		{"a4 landscape", Config{Paper: "A4", Landscape: true}, 297, 210, 25.4},
		{"custom margin", Config{Paper: "legal", Margin: floatPtr(10)}, 215.9, 355.6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.config.geometry()
			if err != nil {
				t.Fatalf("geometry() error = %v", err)
			}
			if g.Width != tt.width || g.Height != tt.height {
				t.Errorf("geometry() = %gx%g, want %gx%g", g.Width, g.Height, tt.width, tt.height)
			}
			if g.Margins != pdfdoc.UniformMargins(tt.margin) {
				t.Errorf("geometry() margins = %+v, want %g on all sides", g.Margins, tt.margin)
			}
		})
	}

	if _, err := (&Config{Paper: "b5"}).geometry(); err == nil {
		t.Error("geometry() expected error for unknown paper")
	}
}

func TestConfigNewDocument(t *testing.T) {
	cfg := defaultConfig()
	cfg.LineMargin = floatPtr(0)
	cfg.Margin = floatPtr(0)
	cfg.FontSize = 72 // one inch

	doc, err := cfg.newDocument()
	if err != nil {
		t.Fatalf("newDocument() error = %v", err)
	}
	if doc.Title() != defaultTitle {
		t.Errorf("Title() = %q, want %q", doc.Title(), defaultTitle)
	}
	// 11" page, 1" lines, no margins
	if got := doc.LinesPerPage(); got != 11 {
		t.Errorf("LinesPerPage() = %d, want 11", got)
	}
}

func TestValidateMail(t *testing.T) {
	valid := Config{
		SMTP:  SMTPConfig{Host: "smtp.example.com", Port: 587},
		Email: EmailConfig{From: "a@example.com", To: "b@example.com"},
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"complete", func(c *Config) {}, false},
		{"no host", func(c *Config) { c.SMTP.Host = "" }, true},
		{"no port", func(c *Config) { c.SMTP.Port = 0 }, true},
		{"no sender", func(c *Config) { c.Email.From = "" }, true},
		{"no recipient", func(c *Config) { c.Email.To = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			err := c.validateMail()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateMail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
