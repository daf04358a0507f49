package permission

import "github.com/huanfeng/apkscope/pkg/models"

// DemoPermissions returns the illustrative records used when no real
// permission list is available. Every record is marked Synthetic.
func DemoPermissions() []models.PermissionRecord {
	demo := []struct {
		id          string
		description string
		category    models.PermissionCategory
	}{
		{"android.permission.INTERNET", "Internet access", models.CategoryNormal},
		{"android.permission.READ_EXTERNAL_STORAGE", "Read from external storage", models.CategoryNormal},
		{"android.permission.WRITE_EXTERNAL_STORAGE", "Write to external storage", models.CategoryDangerous},
		{"android.permission.CAMERA", "Camera access", models.CategoryDangerous},
	}

	records := make([]models.PermissionRecord, 0, len(demo))
	for _, d := range demo {
		records = append(records, models.PermissionRecord{
			Identifier:  d.id,
			Description: d.description,
			Category:    d.category,
			IconTag:     IconTag(d.id),
			RiskNote:    RiskNote(d.category),
			Synthetic:   true,
		})
	}
	return records
}
