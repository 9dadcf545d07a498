package content11

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"
)

type SiteConf struct {
	Author, AuthorURI string
	BaseURL           string
	SiteTitle         string

	WritingDir                 string
	WritingFileExtension       string
	WritingFileDateStampFormat string
	StaticFilesDir             string

	BundleDir string

	NumFrequentTags               int
	MinDocsForFrequentTags        int
	MaxAgeForFrequentTagsInMonths int
}

// ReadConf loads the site configuration from fileName, JSON or YAML, with
// CONTENT11_* environment variables overriding file values.
func ReadConf(fileName string) (*SiteConf, error) {
	v := viper.New()

	v.SetDefault("WritingFileExtension", ".text")
	v.SetDefault("WritingFileDateStampFormat", "2006-01-02")
	v.SetDefault("BundleDir", "bundle")
	v.SetDefault("NumFrequentTags", 6)
	v.SetDefault("MinDocsForFrequentTags", 2)
	v.SetDefault("MaxAgeForFrequentTagsInMonths", 24)

	v.SetConfigFile(fileName)
	v.SetEnvPrefix("CONTENT11")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading site conf %v: %w", fileName, err)
	}

	conf := SiteConf{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("decoding site conf %v: %w", fileName, err)
	}

	if conf.WritingDir == "" {
		return nil, fmt.Errorf("site conf %v: WritingDir is required", fileName)
	}
	if len(conf.StaticFilesDir) == 0 {
		conf.StaticFilesDir = filepath.Join(conf.WritingDir, "static")
	}

	// Normalize relative paths because the executable can be called from anywhere.
	baseDir := filepath.Dir(fileName)
	conf.WritingDir = normalizePath(conf.WritingDir, baseDir)
	conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	conf.BundleDir = normalizePath(conf.BundleDir, baseDir)

	return &conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		absPath := filepath.Join(baseDir, path)
		slog.Debug("normalizing path", "from", path, "to", absPath)
		return absPath
	}
	return path
}
