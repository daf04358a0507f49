package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/pkg/models"
	"gopkg.in/yaml.v3"
)

// Format is a report serialization format
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag or configuration value to a Format.
// The empty string selects FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown report format %q (expected json or yaml)", s)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the file extension, including the dot, for f
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Encode writes r to w as UTF-8 text, pretty-printed, keeping struct field order
func Encode(w io.Writer, r *models.FullReport, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON, FormatAuto:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Decode reads a report previously written by Encode
func Decode(rd io.Reader, format Format) (*models.FullReport, error) {
	var r models.FullReport
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
			return nil, err
		}
	case FormatJSON, FormatAuto:
		if err := json.NewDecoder(rd).Decode(&r); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
	return &r, nil
}

// WriteFile encodes r fully in memory, then writes it to path
func WriteFile(path string, r *models.FullReport, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r, format); err != nil {
		return apperrors.NewSerializationError(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return apperrors.NewSerializationError(path, err)
	}
	return nil
}

// Load reads a report file, inferring the format from its extension
func Load(path string) (*models.FullReport, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInputNotFoundError(path, err)
		}
		return nil, apperrors.NewInputUnreadableError(path, err)
	}
	defer f.Close()

	r, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, apperrors.NewInvalidReportError(path, err)
	}
	return r, nil
}
