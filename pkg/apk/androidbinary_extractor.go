package apk

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/shogo82148/androidbinary"
	"github.com/shogo82148/androidbinary/apk"
)

const (
	androidBinaryName    = "androidbinary"
	androidBinaryVersion = "1.0.5"
	manifestEntry        = "AndroidManifest.xml"
	maxManifestSize      = 16 << 20
)

// ExtractorOption configures a RealExtractor
type ExtractorOption func(*RealExtractor)

// WithProbe replaces the availability check run by Info. The default,
// probeDecoder, decodes a minimal binary manifest.
func WithProbe(probe func() error) ExtractorOption {
	return func(e *RealExtractor) {
		e.probe = probe
	}
}

// RealExtractor reads package metadata with the androidbinary library
type RealExtractor struct {
	probe func() error
}

// NewRealExtractor creates a new androidbinary-backed extractor
func NewRealExtractor(opts ...ExtractorOption) *RealExtractor {
	e := &RealExtractor{probe: probeDecoder}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Info returns information about this source
func (e *RealExtractor) Info() SourceInfo {
	info := SourceInfo{
		Name:         androidBinaryName,
		Version:      androidBinaryVersion,
		Capabilities: []string{"manifest", "permissions", "components", "abis", "icons"},
		Available:    true,
	}
	if e.probe != nil {
		if err := e.probe(); err != nil {
			info.Available = false
			info.Reason = err.Error()
		}
	}
	return info
}

// Extract parses the package manifest. Failures to walk the raw manifest
// for component counts return the manifest fields already read together
// with the error.
func (e *RealExtractor) Extract(apkPath string) (meta *Metadata, err error) {
	// androidbinary panics on some malformed resource tables
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewMetadataExtractionError(androidBinaryName, apkPath, fmt.Errorf("panic: %v", r))
		}
	}()

	pkg, err := apk.OpenFile(apkPath)
	if err != nil {
		return nil, apperrors.NewMetadataExtractionError(androidBinaryName, apkPath, err)
	}
	defer pkg.Close()

	manifest := pkg.Manifest()

	meta = &Metadata{
		Source:      androidBinaryName,
		PackageName: stringValue(manifest.Package),
		AppName:     stringValue(manifest.App.Label),
		VersionName: stringValue(manifest.VersionName),
		Permissions: e.extractPermissions(&manifest),
	}
	if meta.AppName == "" {
		meta.AppName = meta.PackageName
	}
	if code, err := manifest.VersionCode.Int32(); err == nil {
		v := int64(code)
		meta.VersionCode = &v
	}
	if minSDK, err := manifest.SDK.Min.Int32(); err == nil {
		v := int(minSDK)
		meta.MinSDK = &v
	}
	if targetSDK, err := manifest.SDK.Target.Int32(); err == nil {
		v := int(targetSDK)
		meta.TargetSDK = &v
	}

	abis, counts, err := inspectArchive(apkPath)
	meta.ABIs = abis
	if err != nil {
		return meta, apperrors.NewMetadataExtractionError(androidBinaryName, apkPath, err).
			WithContext("stage", "components")
	}
	meta.Components = counts

	return meta, nil
}

// emptyBinaryManifest is a binary XML tree holding only an empty string pool
var emptyBinaryManifest = []byte{
	0x03, 0x00, 0x08, 0x00, 0x24, 0x00, 0x00, 0x00, // ResXMLTree, 36 bytes
	0x01, 0x00, 0x1c, 0x00, 0x1c, 0x00, 0x00, 0x00, // string pool, 28 bytes
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// probeDecoder runs the manifest decode path used by inspectArchive
func probeDecoder() error {
	xmlFile, err := androidbinary.NewXMLFile(bytes.NewReader(emptyBinaryManifest))
	if err != nil {
		return fmt.Errorf("binary XML decoder: %w", err)
	}
	if _, err := countComponents(xmlFile.Reader()); err != nil {
		return fmt.Errorf("binary XML decoder: %w", err)
	}
	return nil
}

func (e *RealExtractor) extractPermissions(manifest *apk.Manifest) []string {
	var permissions []string
	for _, perm := range manifest.UsesPermissions {
		if permName, err := perm.Name.String(); err == nil && permName != "" {
			permissions = append(permissions, permName)
		}
	}
	return permissions
}

func stringValue(s androidbinary.String) string {
	v, err := s.String()
	if err != nil {
		return ""
	}
	return v
}

// inspectArchive walks the zip once to collect native ABIs and the
// component counts of the binary manifest.
func inspectArchive(apkPath string) ([]string, *ComponentCounts, error) {
	reader, err := zip.OpenReader(apkPath)
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	abiSet := make(map[string]struct{})
	var manifestFile *zip.File
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "lib/") {
			parts := strings.Split(file.Name, "/")
			if len(parts) >= 3 && parts[1] != "" {
				abiSet[parts[1]] = struct{}{}
			}
		}
		if file.Name == manifestEntry {
			manifestFile = file
		}
	}

	abis := make([]string, 0, len(abiSet))
	for abi := range abiSet {
		abis = append(abis, abi)
	}
	sort.Strings(abis)

	if manifestFile == nil {
		return abis, nil, fmt.Errorf("%s not found in archive", manifestEntry)
	}

	rc, err := manifestFile.Open()
	if err != nil {
		return abis, nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxManifestSize))
	if err != nil {
		return abis, nil, err
	}

	xmlFile, err := androidbinary.NewXMLFile(bytes.NewReader(data))
	if err != nil {
		return abis, nil, fmt.Errorf("decode binary manifest: %w", err)
	}

	counts, err := countComponents(xmlFile.Reader())
	if err != nil {
		return abis, nil, err
	}
	return abis, counts, nil
}

// countComponents counts component declarations in a plain-text manifest
func countComponents(r io.Reader) (*ComponentCounts, error) {
	decoder := xml.NewDecoder(r)
	counts := &ComponentCounts{}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("walk manifest: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "activity":
			counts.Activities++
		case "service":
			counts.Services++
		case "receiver":
			counts.Receivers++
		case "provider":
			counts.Providers++
		}
	}
}
