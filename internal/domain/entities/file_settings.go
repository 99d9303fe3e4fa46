package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileSettings is the optional on-disk configuration. Empty fields leave the
// corresponding setting untouched.
type FileSettings struct {
	Repo    string `yaml:"repo"`
	Zip     string `yaml:"zip"`
	ZipRepo string `yaml:"zip_repo"`
	Bazel   string `yaml:"bazel"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// configFileNames are tried in order inside every searched directory.
var configFileNames = []string{ //nolint:gochecknoglobals // lookup table
	".freezedeps.yaml",
	".freezedeps.yml",
	"freezedeps.yaml",
	"freezedeps.yml",
}

// LoadFileSettings reads and parses a configuration file, expanding
// ${ENV_VAR} references in every value.
func LoadFileSettings(path string) (*FileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fs FileSettings
	if unmarshalErr := yaml.Unmarshal(data, &fs); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	fs.Repo = expandEnv(fs.Repo)
	fs.Zip = expandEnv(fs.Zip)
	fs.ZipRepo = expandEnv(fs.ZipRepo)
	fs.Bazel = expandEnv(fs.Bazel)

	return &fs, nil
}

// FindConfigFile searches dirs, in order, for a configuration file.
// Empty entries are skipped.
func FindConfigFile(dirs ...string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range configFileNames {
			p := filepath.Join(dir, name)
			if info, statErr := os.Stat(p); statErr == nil && !info.IsDir() {
				return p, nil
			}
		}
	}
	return "", errors.New("config file not found in default locations")
}

// ApplyFile overlays the non-empty values of fs onto the settings.
func (it *Settings) ApplyFile(fs *FileSettings) {
	if fs == nil {
		return
	}
	if fs.Repo != "" {
		it.Repo = fs.Repo
	}
	if fs.Zip != "" {
		it.Zip = fs.Zip
	}
	if fs.ZipRepo != "" {
		it.ZipRepo = fs.ZipRepo
	}
	if fs.Bazel != "" {
		it.Bazel = fs.Bazel
	}
}

// expandEnv replaces ${VAR} references with their environment values.
// Unset variables expand to the empty string.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
