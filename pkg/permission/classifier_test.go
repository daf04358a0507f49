package permission

import (
	"testing"

	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TableEntries(t *testing.T) {
	for id, desc := range dangerousPermissions {
		r := Classify(id)
		assert.Equal(t, id, r.Identifier)
		assert.Equal(t, desc, r.Description)
		assert.Equal(t, models.CategoryDangerous, r.Category, id)
		assert.Equal(t, "High - Privacy sensitive", r.RiskNote, id)
		assert.False(t, r.Synthetic)
	}

	for id, desc := range normalPermissions {
		r := Classify(id)
		assert.Equal(t, desc, r.Description)
		assert.Equal(t, models.CategoryNormal, r.Category, id)
		assert.Equal(t, "Low - Standard functionality", r.RiskNote, id)
	}
}

func TestClassify_Unknown(t *testing.T) {
	tests := []string{
		"com.example.permission.C2D_MESSAGE",
		"android.permission.camera",
		" android.permission.CAMERA",
		"",
	}

	for _, id := range tests {
		r := Classify(id)
		assert.Equal(t, models.CategoryUnknown, r.Category, "%q", id)
		assert.Equal(t, UnknownDescription, r.Description)
		assert.Equal(t, "Unknown - Requires investigation", r.RiskNote)
		assert.Equal(t, GenericIconTag, r.IconTag)
	}
}

func TestIconTag(t *testing.T) {
	assert.Equal(t, "fas fa-camera", IconTag("android.permission.CAMERA"))
	assert.Equal(t, "fas fa-globe", IconTag("android.permission.INTERNET"))
	// In the dangerous table but without a dedicated icon
	assert.Equal(t, GenericIconTag, IconTag("android.permission.SEND_SMS"))
}

func TestClassifyAll_PreservesOrder(t *testing.T) {
	ids := []string{
		"android.permission.INTERNET",
		"com.vendor.CUSTOM",
		"android.permission.CAMERA",
		"android.permission.INTERNET",
	}

	records := ClassifyAll(ids)
	require.Len(t, records, 4)
	for i, r := range records {
		assert.Equal(t, ids[i], r.Identifier)
	}
	assert.Equal(t, models.CategoryUnknown, records[1].Category)
}

func TestKnown(t *testing.T) {
	known := Known()
	require.Len(t, known, len(dangerousPermissions)+len(normalPermissions))

	seenNormal := false
	for _, r := range known {
		if r.Category == models.CategoryNormal {
			seenNormal = true
			continue
		}
		assert.False(t, seenNormal, "dangerous entries must come first, got %s", r.Identifier)
	}
	assert.Equal(t, "android.permission.ACCESS_FINE_LOCATION", known[0].Identifier)
}

func TestSummary(t *testing.T) {
	counts := Summary(ClassifyAll([]string{
		"android.permission.CAMERA",
		"android.permission.SEND_SMS",
		"android.permission.WAKE_LOCK",
		"x",
	}))

	assert.Equal(t, 2, counts[models.CategoryDangerous])
	assert.Equal(t, 1, counts[models.CategoryNormal])
	assert.Equal(t, 1, counts[models.CategoryUnknown])
}

func TestDemoPermissions(t *testing.T) {
	demo := DemoPermissions()
	require.Len(t, demo, 4)

	wantIDs := []string{
		"android.permission.INTERNET",
		"android.permission.READ_EXTERNAL_STORAGE",
		"android.permission.WRITE_EXTERNAL_STORAGE",
		"android.permission.CAMERA",
	}
	wantLevels := []models.PermissionCategory{
		models.CategoryNormal,
		models.CategoryNormal,
		models.CategoryDangerous,
		models.CategoryDangerous,
	}

	for i, r := range demo {
		assert.Equal(t, wantIDs[i], r.Identifier)
		assert.Equal(t, wantLevels[i], r.Category)
		assert.Equal(t, RiskNote(wantLevels[i]), r.RiskNote)
		assert.True(t, r.Synthetic, r.Identifier)
	}
	assert.Equal(t, "Camera access", demo[3].Description)
}

func TestDemoPermissions_ReturnsCopy(t *testing.T) {
	first := DemoPermissions()
	first[0].Description = "changed"

	assert.Equal(t, "Internet access", DemoPermissions()[0].Description)
}
