package apk

// NullExtractor is the fallback source used when no real extractor is
// available. It never reads the file and always returns nothing.
type NullExtractor struct {
	reason string
}

// NewNullExtractor creates a null source; reason is reported by Info
func NewNullExtractor(reason string) *NullExtractor {
	return &NullExtractor{reason: reason}
}

// Extract returns no metadata and no error
func (n *NullExtractor) Extract(path string) (*Metadata, error) {
	return nil, nil
}

// Info returns information about this source
func (n *NullExtractor) Info() SourceInfo {
	return SourceInfo{
		Name:         "none",
		Version:      "-",
		Capabilities: []string{},
		Available:    true,
		Reason:       n.reason,
	}
}
