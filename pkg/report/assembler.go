// Package report builds the full analysis report for a package file and
// writes it to disk.
package report

import (
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/huanfeng/apkscope/internal/errors"
	"github.com/huanfeng/apkscope/internal/version"
	"github.com/huanfeng/apkscope/pkg/apk"
	"github.com/huanfeng/apkscope/pkg/models"
	"github.com/huanfeng/apkscope/pkg/permission"
	"github.com/huanfeng/apkscope/pkg/security"
	"github.com/huanfeng/apkscope/pkg/utils"
)

// Option configures an Assembler
type Option func(*Assembler)

// WithClock overrides the clock used for analysis_timestamp
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithToolVersion overrides the tool_version field
func WithToolVersion(v string) Option {
	return func(a *Assembler) { a.toolVersion = v }
}

// WithFormat sets the output format; FormatAuto infers it from the output path
func WithFormat(f Format) Option {
	return func(a *Assembler) { a.format = f }
}

// WithOutputDir sets the directory used for default-named reports
func WithOutputDir(dir string) Option {
	return func(a *Assembler) { a.outputDir = dir }
}

// WithIconExport writes the launcher icon next to the report
func WithIconExport(size uint) Option {
	return func(a *Assembler) { a.icons = apk.NewIconExtractor(size) }
}

// Assembler composes basic info, permissions and the security section.
// It holds no per-run state; each Build is independent.
type Assembler struct {
	source      apk.MetadataSource
	heuristic   security.Heuristic
	logger      utils.Logger
	now         func() time.Time
	toolVersion string
	format      Format
	outputDir   string
	icons       *apk.IconExtractor
}

// NewAssembler creates an assembler. A nil source selects the null source,
// a nil heuristic the placeholder and a nil logger discards output.
func NewAssembler(source apk.MetadataSource, heuristic security.Heuristic, logger utils.Logger, opts ...Option) *Assembler {
	if source == nil {
		source = apk.NewNullExtractor("no metadata source configured")
	}
	if heuristic == nil {
		heuristic = security.NewPlaceholder()
	}
	if logger == nil {
		logger = utils.NopLogger{}
	}

	a := &Assembler{
		source:      source,
		heuristic:   heuristic,
		logger:      logger,
		now:         time.Now,
		toolVersion: version.ToolVersion(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build analyses the file at path and returns the report. Only input
// filesystem failures are returned; metadata failures become warnings.
func (a *Assembler) Build(path string) (*models.FullReport, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInputNotFoundError(path, err)
		}
		return nil, apperrors.NewInputUnreadableError(path, err)
	}
	if stat.IsDir() {
		return nil, apperrors.NewInputUnreadableError(path, apperrors.New("is a directory"))
	}

	digests, err := apk.CalculateHashes(path)
	if err != nil {
		return nil, err
	}

	log := a.logger.WithField("file", filepath.Base(path))
	log.Debug("Hashed %d bytes (md5 %s)", stat.Size(), digests.MD5)

	meta := a.extract(path, log)

	basic := models.BasicInfo{
		FileName:      filepath.Base(path),
		FileSize:      utils.FormatSize(stat.Size()),
		FileSizeBytes: stat.Size(),
		MD5:           digests.MD5,
		SHA256:        digests.SHA256,
	}
	applyMetadata(&basic, meta)

	return &models.FullReport{
		BasicInfo:         basic,
		Permissions:       a.permissions(meta, log),
		SecurityAnalysis:  a.heuristic.Evaluate(meta),
		AnalysisTimestamp: a.now().UTC().Format(time.RFC3339),
		ToolVersion:       a.toolVersion,
	}, nil
}

// Save builds the report for input and writes it to output, or to the
// default path when output is empty. It returns the path written.
func (a *Assembler) Save(input, output string) (string, *models.FullReport, error) {
	format := a.format
	if output == "" {
		if format == FormatAuto {
			format = FormatJSON
		}
		output = DefaultOutputPath(input, format, a.outputDir)
	} else if format == FormatAuto {
		format = FormatFromPath(output)
	}

	r, err := a.Build(input)
	if err != nil {
		return "", nil, err
	}

	if a.icons != nil {
		iconPath := iconPathFor(input, output)
		if err := a.icons.WriteIcon(input, iconPath); err != nil {
			a.logger.Warn("Could not export icon: %v", err)
		} else {
			r.BasicInfo.IconFile = filepath.Base(iconPath)
		}
	}

	if err := WriteFile(output, r, format); err != nil {
		return "", nil, err
	}
	return output, r, nil
}

func (a *Assembler) extract(path string, log utils.Logger) *apk.Metadata {
	meta, err := a.source.Extract(path)
	if err != nil {
		if meta != nil {
			log.Warn("Could not extract complete metadata: %v", err)
		} else {
			log.Warn("Could not extract metadata: %v", err)
		}
	}
	if meta != nil {
		log.Debug("Metadata read by %s: package=%q permissions=%d", meta.Source, meta.PackageName, len(meta.Permissions))
	}
	return meta
}

func (a *Assembler) permissions(meta *apk.Metadata, log utils.Logger) []models.PermissionRecord {
	if meta != nil && len(meta.Permissions) > 0 {
		return permission.ClassifyAll(meta.Permissions)
	}
	log.Info("No permissions extracted; report uses demo permissions marked is_synthetic")
	return permission.DemoPermissions()
}

func applyMetadata(basic *models.BasicInfo, meta *apk.Metadata) {
	if meta == nil {
		return
	}

	basic.PackageName = meta.PackageName
	basic.AppName = meta.AppName
	basic.VersionName = meta.VersionName
	basic.VersionCode = meta.VersionCode
	basic.MinSDK = meta.MinSDK
	basic.TargetSDK = meta.TargetSDK
	if len(meta.ABIs) > 0 {
		basic.ABIs = append([]string(nil), meta.ABIs...)
	}
	if meta.PackageName != "" {
		count := len(meta.Permissions)
		basic.PermissionsCount = &count
	}
	if c := meta.Components; c != nil {
		activities, services, receivers, providers := c.Activities, c.Services, c.Receivers, c.Providers
		basic.ActivitiesCount = &activities
		basic.ServicesCount = &services
		basic.ReceiversCount = &receivers
		basic.ProvidersCount = &providers
	}
}
