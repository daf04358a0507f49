package apk

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"strings"

	"github.com/nfnt/resize"
	"github.com/shogo82148/androidbinary"
	"github.com/shogo82148/androidbinary/apk"
	"golang.org/x/image/webp"
)

// DefaultIconSize is the edge length of exported icons
const DefaultIconSize = 144

// Android screen densities from highest to lowest
var iconDensities = []uint16{640, 480, 320, 240, 160}

// Launcher icon paths tried when the resource table gives nothing usable
var iconPriorities = []string{
	"res/mipmap-xxxhdpi/ic_launcher.png",
	"res/mipmap-xxhdpi/ic_launcher.png",
	"res/mipmap-xhdpi/ic_launcher.png",
	"res/mipmap-hdpi/ic_launcher.png",
	"res/drawable-xxxhdpi/ic_launcher.png",
	"res/drawable-xxhdpi/ic_launcher.png",
	"res/drawable-xhdpi/ic_launcher.png",
	"res/drawable-hdpi/ic_launcher.png",
	"res/mipmap-xxxhdpi/ic_launcher.webp",
	"res/mipmap-xxhdpi/ic_launcher.webp",
	"res/mipmap-xhdpi/ic_launcher.webp",
	"res/mipmap-hdpi/ic_launcher.webp",
}

// IconExtractor exports the launcher icon of an APK as a square PNG
type IconExtractor struct {
	targetSize uint
}

// NewIconExtractor creates a new icon extractor; size 0 selects DefaultIconSize
func NewIconExtractor(size uint) *IconExtractor {
	if size == 0 {
		size = DefaultIconSize
	}
	return &IconExtractor{targetSize: size}
}

// ExtractIcon returns PNG bytes of the best launcher icon found
func (e *IconExtractor) ExtractIcon(apkPath string) ([]byte, error) {
	if pkg, err := apk.OpenFile(apkPath); err == nil {
		img := e.iconFromPackage(pkg)
		pkg.Close()
		if img != nil {
			return e.encode(img)
		}
	}

	return e.extractIconFromZip(apkPath)
}

// WriteIcon extracts the icon and writes it to outPath
func (e *IconExtractor) WriteIcon(apkPath, outPath string) error {
	data, err := e.ExtractIcon(apkPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}

// iconFromPackage asks the resource table for the widest icon across densities
func (e *IconExtractor) iconFromPackage(pkg *apk.Apk) (best image.Image) {
	defer func() {
		if recover() != nil {
			best = nil
		}
	}()

	bestWidth := 0
	for _, density := range iconDensities {
		icon, err := pkg.Icon(&androidbinary.ResTableConfig{Density: density})
		if err != nil || icon == nil {
			continue
		}
		if w := icon.Bounds().Dx(); w > bestWidth {
			best, bestWidth = icon, w
		}
	}
	return best
}

// extractIconFromZip reads a launcher icon straight from the archive
func (e *IconExtractor) extractIconFromZip(apkPath string) ([]byte, error) {
	reader, err := zip.OpenReader(apkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open APK: %w", err)
	}
	defer reader.Close()

	files := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		files[file.Name] = file
	}

	for _, iconPath := range iconPriorities {
		if file, ok := files[iconPath]; ok {
			if data, err := e.decodeZipEntry(file); err == nil {
				return data, nil
			}
		}
	}

	// Any launcher icon that is not an adaptive layer
	for _, file := range reader.File {
		name := file.Name
		if strings.Contains(name, "ic_launcher") &&
			(strings.HasSuffix(name, ".png") || strings.HasSuffix(name, ".webp")) &&
			!strings.Contains(name, "_foreground") &&
			!strings.Contains(name, "_background") {
			if data, err := e.decodeZipEntry(file); err == nil {
				return data, nil
			}
		}
	}

	return nil, fmt.Errorf("no launcher icon found in APK")
}

func (e *IconExtractor) decodeZipEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	iconData, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if path.Ext(file.Name) == ".webp" {
		img, err = webp.Decode(bytes.NewReader(iconData))
		if err != nil {
			return nil, fmt.Errorf("failed to decode webp: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(iconData))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
	}

	return e.encode(img)
}

// encode resizes to the target square and encodes as PNG
func (e *IconExtractor) encode(img image.Image) ([]byte, error) {
	resized := resize.Resize(e.targetSize, e.targetSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
