package apk

import (
	"fmt"
	"strings"

	"github.com/huanfeng/apkscope/pkg/utils"
)

// Extractor modes accepted by SelectSource
const (
	ModeAuto          = "auto"
	ModeAndroidBinary = "androidbinary"
	ModeNone          = "none"
)

// MetadataSource extracts manifest-level facts from a package file.
//
// Extract may return a non-nil Metadata together with an error when only part
// of the information could be read; callers keep the partial result.
type MetadataSource interface {
	Extract(path string) (*Metadata, error)
	Info() SourceInfo
}

// SourceInfo describes a metadata source
type SourceInfo struct {
	Name         string
	Version      string
	Capabilities []string
	Available    bool
	Reason       string // Why the source is unavailable
}

// Metadata contains facts read from the package manifest and archive
type Metadata struct {
	Source      string
	PackageName string
	AppName     string
	VersionName string
	VersionCode *int64
	MinSDK      *int
	TargetSDK   *int
	Permissions []string
	ABIs        []string

	// Nil when the manifest could not be walked
	Components *ComponentCounts
}

// ComponentCounts holds the number of declared application components
type ComponentCounts struct {
	Activities int
	Services   int
	Receivers  int
	Providers  int
}

// Sources returns every source known to this build, in preference order
func Sources() []MetadataSource {
	return []MetadataSource{
		NewRealExtractor(),
		NewNullExtractor("metadata extraction disabled"),
	}
}

// SelectSource picks the metadata source for the given mode. When the real
// extractor is requested but unavailable, auto mode degrades to the null
// source with a warning; an explicit androidbinary request fails instead.
func SelectSource(mode string, logger utils.Logger, opts ...ExtractorOption) (MetadataSource, error) {
	if logger == nil {
		logger = utils.NopLogger{}
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		extractor := NewRealExtractor(opts...)
		if info := extractor.Info(); !info.Available {
			logger.Warn("metadata extractor %s unavailable (%s); continuing in fallback mode", info.Name, info.Reason)
			return NewNullExtractor(info.Reason), nil
		}
		return extractor, nil
	case ModeAndroidBinary:
		extractor := NewRealExtractor(opts...)
		if info := extractor.Info(); !info.Available {
			return nil, fmt.Errorf("metadata extractor %s unavailable: %s", info.Name, info.Reason)
		}
		return extractor, nil
	case ModeNone:
		logger.Warn("metadata extraction disabled; continuing in fallback mode")
		return NewNullExtractor("metadata extraction disabled"), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (expected %s, %s or %s)", mode, ModeAuto, ModeAndroidBinary, ModeNone)
	}
}
