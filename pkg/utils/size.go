package utils

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with one decimal and a binary unit,
// e.g. "2.0 KB". Zero is rendered as "0B".
func FormatSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0B"
	}

	size := float64(sizeBytes)
	i := 0
	for size >= 1024.0 && i < len(sizeUnits)-1 {
		size /= 1024.0
		i++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[i])
}
