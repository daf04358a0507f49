package security

import (
	"testing"

	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_Evaluate(t *testing.T) {
	r := NewPlaceholder().Evaluate(nil)

	assert.Equal(t, 75, r.OverallScore)
	assert.Equal(t, "Moderate Security", r.SecurityLevel)
	assert.Equal(t, "medium", r.ScoreClass)
	assert.True(t, r.Placeholder)

	require.Len(t, r.Features, 3)
	assert.Equal(t, "Code Obfuscation", r.Features[0].Title)
	assert.Equal(t, ClassWarning, r.Features[0].Class)
	assert.Equal(t, "Debug Mode", r.Features[1].Title)
	assert.Equal(t, ClassPositive, r.Features[1].Class)
	assert.Equal(t, "Network Security", r.Features[2].Title)

	require.Len(t, r.Concerns, 1)
	assert.Equal(t, "SSL Pinning", r.Concerns[0].Title)
	assert.Equal(t, "Not Detected", r.Concerns[0].Status)
}

func TestPlaceholder_IgnoresMetadata(t *testing.T) {
	meta := &apk.Metadata{
		PackageName: "com.example.app",
		Permissions: []string{"android.permission.CAMERA"},
	}

	assert.Equal(t, NewPlaceholder().Evaluate(nil), NewPlaceholder().Evaluate(meta))
}

func TestScoreClass(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "high"},
		{80, "high"},
		{79, "medium"},
		{50, "medium"},
		{49, "low"},
		{0, "low"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreClass(tt.score), "score %d", tt.score)
	}
}
