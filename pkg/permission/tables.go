package permission

import "github.com/huanfeng/apkscope/pkg/models"

// Static lookup tables. Keys are matched by exact string equality.
var (
	dangerousPermissions = map[string]string{
		"android.permission.CAMERA":                 "Camera access",
		"android.permission.RECORD_AUDIO":           "Audio recording",
		"android.permission.ACCESS_FINE_LOCATION":   "Precise location",
		"android.permission.READ_CONTACTS":          "Read contacts",
		"android.permission.WRITE_EXTERNAL_STORAGE": "Write storage",
		"android.permission.SEND_SMS":               "Send SMS",
	}

	normalPermissions = map[string]string{
		"android.permission.INTERNET":              "Internet access",
		"android.permission.ACCESS_NETWORK_STATE":  "Network state",
		"android.permission.READ_EXTERNAL_STORAGE": "Read storage",
		"android.permission.WAKE_LOCK":             "Keep device awake",
	}

	iconTags = map[string]string{
		"android.permission.CAMERA":                 "fas fa-camera",
		"android.permission.RECORD_AUDIO":           "fas fa-microphone",
		"android.permission.ACCESS_FINE_LOCATION":   "fas fa-map-marker-alt",
		"android.permission.READ_CONTACTS":          "fas fa-address-book",
		"android.permission.WRITE_EXTERNAL_STORAGE": "fas fa-edit",
		"android.permission.READ_EXTERNAL_STORAGE":  "fas fa-folder-open",
		"android.permission.INTERNET":               "fas fa-globe",
		"android.permission.ACCESS_NETWORK_STATE":   "fas fa-network-wired",
	}
)

const (
	// GenericIconTag is used for identifiers without a dedicated icon
	GenericIconTag = "fas fa-shield-alt"
	// UnknownDescription is used for identifiers in neither table
	UnknownDescription = "Custom or system permission"
)

var riskNotes = map[models.PermissionCategory]string{
	models.CategoryDangerous: "High - Privacy sensitive",
	models.CategoryNormal:    "Low - Standard functionality",
	models.CategoryUnknown:   "Unknown - Requires investigation",
}
