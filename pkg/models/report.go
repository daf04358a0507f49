package models

import "fmt"

// PermissionCategory is the risk tier a permission identifier resolves to
type PermissionCategory string

const (
	CategoryDangerous PermissionCategory = "dangerous"
	CategoryNormal    PermissionCategory = "normal"
	CategoryUnknown   PermissionCategory = "unknown"
)

// Valid reports whether c is one of the three known tiers
func (c PermissionCategory) Valid() bool {
	switch c {
	case CategoryDangerous, CategoryNormal, CategoryUnknown:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects values outside the three tiers so a decoded report
// cannot carry an invalid category.
func (c *PermissionCategory) UnmarshalText(text []byte) error {
	v := PermissionCategory(text)
	if !v.Valid() {
		return fmt.Errorf("invalid permission level %q", string(text))
	}
	*c = v
	return nil
}

// PermissionRecord describes one requested permission after classification
type PermissionRecord struct {
	Identifier  string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Category    PermissionCategory `json:"level" yaml:"level"`
	IconTag     string             `json:"icon" yaml:"icon"`
	RiskNote    string             `json:"risk_assessment" yaml:"risk_assessment"`
	Synthetic   bool               `json:"is_synthetic" yaml:"is_synthetic"` // Demo data, not extracted from the file
}

// BasicInfo contains file-level facts and, when a metadata source succeeded,
// manifest-level facts about the analysed package.
type BasicInfo struct {
	FileName      string `json:"file_name" yaml:"file_name"`
	FileSize      string `json:"file_size" yaml:"file_size"`
	FileSizeBytes int64  `json:"file_size_bytes" yaml:"file_size_bytes"`
	MD5           string `json:"md5_hash" yaml:"md5_hash"`
	SHA256        string `json:"sha256_hash" yaml:"sha256_hash"`

	// Optional package metadata
	PackageName      string   `json:"package_name,omitempty" yaml:"package_name,omitempty"`
	AppName          string   `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	VersionName      string   `json:"version_name,omitempty" yaml:"version_name,omitempty"`
	VersionCode      *int64   `json:"version_code,omitempty" yaml:"version_code,omitempty"`
	MinSDK           *int     `json:"min_sdk,omitempty" yaml:"min_sdk,omitempty"`
	TargetSDK        *int     `json:"target_sdk,omitempty" yaml:"target_sdk,omitempty"`
	PermissionsCount *int     `json:"permissions_count,omitempty" yaml:"permissions_count,omitempty"`
	ActivitiesCount  *int     `json:"activities_count,omitempty" yaml:"activities_count,omitempty"`
	ServicesCount    *int     `json:"services_count,omitempty" yaml:"services_count,omitempty"`
	ReceiversCount   *int     `json:"receivers_count,omitempty" yaml:"receivers_count,omitempty"`
	ProvidersCount   *int     `json:"providers_count,omitempty" yaml:"providers_count,omitempty"`
	ABIs             []string `json:"abis,omitempty" yaml:"abis,omitempty"`
	IconFile         string   `json:"icon_file,omitempty" yaml:"icon_file,omitempty"`
}

// HasPackageMetadata reports whether any manifest-derived field is set
func (b *BasicInfo) HasPackageMetadata() bool {
	return b.PackageName != "" || b.VersionName != "" || b.VersionCode != nil ||
		b.MinSDK != nil || b.TargetSDK != nil || b.PermissionsCount != nil
}

// SecurityFinding is one entry of the feature or concern lists
type SecurityFinding struct {
	Title       string `json:"title" yaml:"title"`
	Status      string `json:"status" yaml:"status"`
	Class       string `json:"class" yaml:"class"` // positive, warning, negative
	Description string `json:"description" yaml:"description"`
}

// SecurityReport is the security section of a report
type SecurityReport struct {
	OverallScore  int               `json:"overall_score" yaml:"overall_score"` // 0-100
	SecurityLevel string            `json:"security_level" yaml:"security_level"`
	ScoreClass    string            `json:"score_class" yaml:"score_class"`
	Features      []SecurityFinding `json:"security_features" yaml:"security_features"`
	Concerns      []SecurityFinding `json:"security_concerns" yaml:"security_concerns"`
	Placeholder   bool              `json:"placeholder" yaml:"placeholder"`
}

// FullReport is the complete analysis result written to disk
type FullReport struct {
	BasicInfo         BasicInfo          `json:"basic_info" yaml:"basic_info"`
	Permissions       []PermissionRecord `json:"permissions" yaml:"permissions"`
	SecurityAnalysis  SecurityReport     `json:"security_analysis" yaml:"security_analysis"`
	AnalysisTimestamp string             `json:"analysis_timestamp" yaml:"analysis_timestamp"`
	ToolVersion       string             `json:"tool_version" yaml:"tool_version"`
}

// HasSyntheticPermissions reports whether the permission list is demo data
func (r *FullReport) HasSyntheticPermissions() bool {
	for _, p := range r.Permissions {
		if p.Synthetic {
			return true
		}
	}
	return false
}
