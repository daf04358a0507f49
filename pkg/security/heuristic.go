// Package security produces the security section of an analysis report.
//
// The only implementation today is Placeholder, which returns fixed values
// regardless of the package. Reports built with it carry Placeholder=true.
package security

import (
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/huanfeng/apkscope/pkg/models"
)

// Heuristic evaluates package metadata into a security report.
// meta is nil when no metadata source produced anything.
type Heuristic interface {
	Evaluate(meta *apk.Metadata) models.SecurityReport
}

// Finding classes
const (
	ClassPositive = "positive"
	ClassWarning  = "warning"
	ClassNegative = "negative"
)

const (
	placeholderScore = 75
	placeholderLevel = "Moderate Security"
)

// Placeholder returns a constant report. It does not inspect the package.
// TODO: derive debuggable/cleartext/backup findings from manifest flags once
// Metadata exposes application attributes.
type Placeholder struct{}

// NewPlaceholder creates the constant heuristic
func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

// Evaluate ignores meta and returns the fixed report
func (Placeholder) Evaluate(meta *apk.Metadata) models.SecurityReport {
	return models.SecurityReport{
		OverallScore:  placeholderScore,
		SecurityLevel: placeholderLevel,
		ScoreClass:    ScoreClass(placeholderScore),
		Features: []models.SecurityFinding{
			{
				Title:       "Code Obfuscation",
				Status:      "Not Detected",
				Class:       ClassWarning,
				Description: "Code obfuscation not found",
			},
			{
				Title:       "Debug Mode",
				Status:      "Disabled",
				Class:       ClassPositive,
				Description: "Debug mode is disabled",
			},
			{
				Title:       "Network Security",
				Status:      "Configured",
				Class:       ClassPositive,
				Description: "Network security configured",
			},
		},
		Concerns: []models.SecurityFinding{
			{
				Title:       "SSL Pinning",
				Status:      "Not Detected",
				Class:       ClassWarning,
				Description: "SSL certificate pinning not found",
			},
		},
		Placeholder: true,
	}
}

// ScoreClass maps a 0-100 score to the display class used in reports
func ScoreClass(score int) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 50:
		return "medium"
	default:
		return "low"
	}
}
