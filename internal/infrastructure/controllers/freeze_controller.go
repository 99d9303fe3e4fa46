package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/freezedeps/internal/domain/commands"
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// FreezeController handles the root command.
type FreezeController struct {
	command commands.Freeze
}

// NewFreezeController creates a new FreezeController.
func NewFreezeController(command commands.Freeze) *FreezeController {
	return &FreezeController{command: command}
}

// GetBind returns the Cobra command metadata for the freeze controller.
func (it *FreezeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "freezedeps",
		Short: "Freeze rules_jvm_external pins into an importable zip",
		Long: `Convert rules_jvm_external lock files to frozen zip files that can be
imported in your own builds without re-resolving or contacting remote repositories.

The tool re-pins the given maven_install repository, collects the files Bazel
generated for it under the output base, strips credential lines from defs.bzl,
renames the repository in compat.bzl, and writes everything into a zip archive
that is byte-identical across runs with unchanged inputs.

When run through ` + "`bazel run`" + `, commands run and relative paths resolve in
$` + entities.WorkspaceDirEnv + `.`,
	}
}

// AddFlags adds the freeze flags to the given Cobra command.
func (it *FreezeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", entities.DefaultRepo, "Name of the maven_install rule to freeze")
	cmd.Flags().String("zip", entities.DefaultZip, "Name of zip file to create containing frozen deps")
	cmd.Flags().String("zip-repo", "",
		"Name of the zip repository used to import the zip file. Used only if compat_repositories are enabled")
	cmd.Flags().String("bazel", entities.DefaultBazel,
		fmt.Sprintf("Build tool binary (or set %s env var)", entities.BazelEnv))
}

// Execute runs the freeze and prints a report of the written archive.
func (it *FreezeController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := ResolveSettings(cmd)
	if err != nil {
		return err
	}
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	result, err := it.command.Execute(ctx, settings)
	if err != nil {
		return err
	}

	if reportErr := writeReport(cmd.OutOrStdout(), result); reportErr != nil {
		return fmt.Errorf("failed to print report: %w", reportErr)
	}
	logger.Infof("Frozen %s into %s", settings.PinTarget(), result.ArchivePath)
	return nil
}

// ResolveSettings builds the run settings from defaults, the environment,
// the config file, and explicitly set flags, in increasing precedence.
func ResolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	settings := entities.NewSettings()
	settings.WorkspaceDir = os.Getenv(entities.WorkspaceDirEnv)
	if bazel := os.Getenv(entities.BazelEnv); bazel != "" {
		settings.Bazel = bazel
	}

	fileSettings, err := loadFileSettings(cmd, settings.WorkspaceDir)
	if err != nil {
		return nil, err
	}
	settings.ApplyFile(fileSettings)

	flags := cmd.Flags()
	if flags.Changed("repo") {
		settings.Repo, _ = flags.GetString("repo")
	}
	if flags.Changed("zip") {
		settings.Zip, _ = flags.GetString("zip")
	}
	if flags.Changed("zip-repo") {
		settings.ZipRepo, _ = flags.GetString("zip-repo")
	}
	if flags.Changed("bazel") {
		settings.Bazel, _ = flags.GetString("bazel")
	}
	settings.Verbose, _ = flags.GetBool("verbose")

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// loadFileSettings loads the config file named by --config, or the first one
// found in the workspace or current directory. Only an explicit file is mandatory.
func loadFileSettings(cmd *cobra.Command, workspaceDir string) (*entities.FileSettings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile(workspaceDir, ".")
		if err != nil {
			logger.Debugf("No config file: %v", err)
			return nil, nil //nolint:nilnil // a missing optional config is not an error
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)
	fileSettings, err := entities.LoadFileSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidSettings, err)
	}
	return fileSettings, nil
}
