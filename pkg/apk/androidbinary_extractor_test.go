package apk

import (
	"archive/zip"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.apk")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestCountComponents(t *testing.T) {
	manifest := `<?xml version="1.0" encoding="utf-8"?>
<manifest package="com.example.app">
  <uses-permission android:name="android.permission.INTERNET"/>
  <application>
    <activity android:name=".Main"/>
    <activity android:name=".Settings"/>
    <activity-alias android:name=".Launcher"/>
    <service android:name=".Sync"/>
    <receiver android:name=".Boot"/>
    <receiver android:name=".Alarm"/>
    <provider android:name=".Files"/>
  </application>
</manifest>`

	counts, err := countComponents(strings.NewReader(manifest))
	require.NoError(t, err)
	assert.Equal(t, &ComponentCounts{Activities: 2, Services: 1, Receivers: 2, Providers: 1}, counts)
}

func TestCountComponents_Malformed(t *testing.T) {
	_, err := countComponents(strings.NewReader("<manifest><application></manifest>"))
	assert.Error(t, err)
}

func TestInspectArchive_MissingManifest(t *testing.T) {
	path := writeZip(t, map[string]string{
		"lib/x86_64/libfoo.so":       "x",
		"lib/arm64-v8a/libfoo.so":    "x",
		"lib/arm64-v8a/libbar.so":    "x",
		"lib/README":                 "not an abi",
		"classes.dex":                "dex",
		"res/drawable/ic_launch.png": "png",
	})

	abis, counts, err := inspectArchive(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AndroidManifest.xml")
	assert.Nil(t, counts)
	assert.Equal(t, []string{"arm64-v8a", "x86_64"}, abis)
}

func TestRealExtractor_ZipWithoutManifest(t *testing.T) {
	path := writeZip(t, map[string]string{"classes.dex": "dex"})

	_, err := NewRealExtractor().Extract(path)
	assert.Error(t, err)
}

const helloWorldAPK = "testdata/helloworld.apk"

func TestRealExtractor_Extract(t *testing.T) {
	meta, err := NewRealExtractor().Extract(helloWorldAPK)
	require.NoError(t, err)

	assert.Equal(t, androidBinaryName, meta.Source)
	assert.Equal(t, "com.example.helloworld", meta.PackageName)
	assert.Equal(t, "HelloWorld", meta.AppName)

	require.NotNil(t, meta.VersionCode)
	assert.Equal(t, int64(1), *meta.VersionCode)
	require.NotNil(t, meta.MinSDK)
	assert.Equal(t, 15, *meta.MinSDK)
	require.NotNil(t, meta.TargetSDK)
	assert.Equal(t, 24, *meta.TargetSDK)

	assert.Empty(t, meta.Permissions)
	assert.Empty(t, meta.ABIs)
	assert.Equal(t, &ComponentCounts{Activities: 1}, meta.Components)
}

func TestInspectArchive_BinaryManifest(t *testing.T) {
	abis, counts, err := inspectArchive(helloWorldAPK)
	require.NoError(t, err)
	assert.Empty(t, abis)
	assert.Equal(t, 1, counts.Activities)
}

func TestRealExtractor_AvailableByDefault(t *testing.T) {
	require.NoError(t, probeDecoder())

	info := NewRealExtractor().Info()
	assert.True(t, info.Available)
	assert.Empty(t, info.Reason)
}

func TestIconExtractor_RealPackage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, NewIconExtractor(48).WriteIcon(helloWorldAPK, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.Width)
}
