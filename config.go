package main

import (
	"encoding/json"
	"fmt"
	"os"

	"linedoc/pdfdoc"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmailConfig struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type FontConfig struct {
	Family string `json:"family"`
	Style  string `json:"style"`
	File   string `json:"file"` // TrueType font, family is then free-form
}

// Config describes the generated document. Lengths are in millimeters.
type Config struct {
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	Font       FontConfig  `json:"font"`
	FontSize   float64     `json:"fontSize"` // points
	Paper      string      `json:"paper"`    // letter, a4, legal
	Landscape  bool        `json:"landscape"`
	Margin     *float64    `json:"margin"`     // all four sides
	LineMargin *float64    `json:"lineMargin"` // gap between lines
	SMTP       SMTPConfig  `json:"smtp"`
	Email      EmailConfig `json:"email"`
}

const (
	defaultTitle = "Document"
	defaultPaper = "letter"
	defaultPort  = 587
)

// defaultConfig mirrors the library defaults: Times 12pt on Letter.
func defaultConfig() *Config {
	return &Config{
		Title:    defaultTitle,
		Font:     FontConfig{Family: pdfdoc.Times.Family},
		FontSize: pdfdoc.DefaultFontSize,
		Paper:    defaultPaper,
		SMTP:     SMTPConfig{Port: defaultPort},
	}
}

// loadConfig reads and parses the JSON configuration file. Fields missing
// from the file keep their defaults.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, ok := pdfdoc.PaperByName(cfg.Paper); !ok {
		return nil, fmt.Errorf("unknown paper size %q", cfg.Paper)
	}
	if cfg.FontSize <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", cfg.FontSize)
	}

	return cfg, nil
}

// validateMail checks the settings needed to send the document.
func (c *Config) validateMail() error {
	switch {
	case c.SMTP.Host == "":
		return fmt.Errorf("no SMTP host configured")
	case c.SMTP.Port <= 0:
		return fmt.Errorf("invalid SMTP port %d", c.SMTP.Port)
	case c.Email.From == "":
		return fmt.Errorf("no sender address configured")
	case c.Email.To == "":
		return fmt.Errorf("no recipient address configured")
	}
	return nil
}

// geometry returns the page geometry selected by the configuration.
func (c *Config) geometry() (pdfdoc.Geometry, error) {
	g, ok := pdfdoc.PaperByName(c.Paper)
	if !ok {
		return pdfdoc.Geometry{}, fmt.Errorf("unknown paper size %q", c.Paper)
	}
	if c.Margin != nil {
		g = g.WithMargins(pdfdoc.UniformMargins(*c.Margin))
	}
	if c.Landscape {
		g = g.Landscape()
	}
	return g, nil
}

// newDocument creates an empty document from the configuration.
func (c *Config) newDocument() (*pdfdoc.Document, error) {
	geom, err := c.geometry()
	if err != nil {
		return nil, err
	}

	opts := []pdfdoc.Option{pdfdoc.WithCreator("linedoc v" + version)}
	if c.Author != "" {
		opts = append(opts, pdfdoc.WithAuthor(c.Author))
	}
	if c.LineMargin != nil {
		opts = append(opts, pdfdoc.WithLineMargin(*c.LineMargin))
	}

	font := pdfdoc.Font{Family: c.Font.Family, Style: c.Font.Style, File: c.Font.File}
	return pdfdoc.New(c.Title, font, c.FontSize, geom, opts...)
}
