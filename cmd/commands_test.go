package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/internal/i18n"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	defer resetFlags()()

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "apkscope ")
}

func TestSourcesCommand(t *testing.T) {
	defer resetFlags()()

	stdout, _, err := executeCommand(t, "sources")
	require.NoError(t, err)
	assert.Contains(t, stdout, "androidbinary")
	assert.Contains(t, stdout, "none")
}

func TestClassifyCommand(t *testing.T) {
	defer resetFlags()()

	stdout, _, err := executeCommand(t, "classify", "android.permission.CAMERA", "com.vendor.PUSH")
	require.NoError(t, err)
	assert.Contains(t, stdout, "High - Privacy sensitive")
	assert.Contains(t, stdout, "Unknown - Requires investigation")
}

func TestClassifyCommand_JSON(t *testing.T) {
	defer resetFlags()()

	stdout, _, err := executeCommand(t, "classify", "--json")
	require.NoError(t, err)

	var records []models.PermissionRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Len(t, records, 10)
	assert.Equal(t, models.CategoryDangerous, records[0].Category)
}

func TestInspectCommand(t *testing.T) {
	defer resetFlags()()

	input := writeAPK(t, "app.apk", 64)
	output := filepath.Join(t.TempDir(), "report.yaml")
	_, _, err := executeCommand(t, "--no-extract", input, "-o", output)
	require.NoError(t, err)
	resetFlags()

	stdout, _, err := executeCommand(t, "inspect", output, "--verify", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "File:      app.apk (64.0 B)")
	assert.Contains(t, stdout, "dangerous: 2, normal: 2, unknown: 0")
	assert.Contains(t, stdout, "Digests match")
}

func TestInspectCommand_Localized(t *testing.T) {
	defer resetFlags()()

	input := writeAPK(t, "app.apk", 64)
	output := filepath.Join(t.TempDir(), "report.json")
	_, _, err := executeCommand(t, "--no-extract", input, "-o", output)
	require.NoError(t, err)
	resetFlags()

	require.NoError(t, i18n.Init("zh"))
	defer func() { _ = i18n.Init("en") }()

	stdout, _, err := executeCommand(t, "inspect", output, "--verify", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "文件：    app.apk（64.0 B）")
	assert.Contains(t, stdout, "危险：2，普通：2，未知：0")
	assert.Contains(t, stdout, "摘要一致：")
	assert.NotContains(t, stdout, "Digests match")

	stdout, _, err = executeCommand(t, "classify", "android.permission.CAMERA")
	require.NoError(t, err)
	assert.Contains(t, stdout, "权限")
	assert.NotContains(t, stdout, "PERMISSION")
}

func TestInspectCommand_DigestMismatch(t *testing.T) {
	defer resetFlags()()

	input := writeAPK(t, "app.apk", 64)
	output := filepath.Join(t.TempDir(), "report.json")
	_, _, err := executeCommand(t, "--no-extract", input, "-o", output)
	require.NoError(t, err)
	resetFlags()

	other := writeAPK(t, "other.apk", 65)
	_, _, err = executeCommand(t, "inspect", output, "--verify", other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestInitConfigCommand(t *testing.T) {
	defer resetFlags()()

	path := filepath.Join(t.TempDir(), "apkscope.yaml")
	stdout, _, err := executeCommand(t, "init-config", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)
	assert.FileExists(t, path)
	resetFlags()

	_, _, err = executeCommand(t, "init-config", "--path", path)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfig))
	resetFlags()

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	_, _, err = executeCommand(t, "init-config", "--path", path, "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "extractor:")
}
