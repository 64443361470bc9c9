package govsetup

import (
	"fmt"
	"os"

	"github.com/arthur-debert/govsetup/internal/version"
	"github.com/arthur-debert/govsetup/pkg/adapters"
	"github.com/arthur-debert/govsetup/pkg/commands/install"
	"github.com/arthur-debert/govsetup/pkg/config"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/prompt"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// appState holds what PersistentPreRunE prepares for every command.
type appState struct {
	cfg     *config.Config
	catalog *types.Catalog
	fs      types.FS
}

// NewRootCmd creates and returns the root command. Run without a subcommand
// it performs the installation.
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity   int
		configPath  string
		color       string
		packageRoot string
		yes         bool
		target      string
		adapterIDs  []string
	)
	rt := &appState{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "govsetup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := loadConfig(cmd, configPath, color, packageRoot)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			rt.cfg = cfg
			styles.ConfigureColor(cfg.Output.Color, cmd.OutOrStdout())

			rt.catalog, err = config.LoadCatalog()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !yes && (flags.Changed("target") || flags.Changed("adapters")) {
				return errors.New(errors.ErrInvalidInput, MsgErrTargetNeeded)
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}

			var p prompt.Prompter = prompt.NewPTerm()
			if yes {
				scripted := &prompt.Scripted{Target: target}
				if flags.Changed("adapters") {
					if _, err := adapters.Resolve(rt.catalog, adapterIDs); err != nil {
						return err
					}
					scripted.Adapters = append([]string{}, adapterIDs...)
				}
				p = scripted
			}

			root, err := paths.FindPackageRoot(rt.fs, rt.cfg.PackageRoot, rt.catalog.Core)
			if err != nil {
				return err
			}
			log.Info().Str("package_root", root).Msg("Using packaged content")

			_, err = install.Install(install.InstallOptions{
				Catalog:     rt.catalog,
				PackageRoot: root,
				WorkDir:     wd,
				Exclude:     rt.cfg.Merge.Exclude,
				Prompter:    p,
				Output:      cmd.OutOrStdout(),
				FileSystem:  rt.fs,
			})
			if err != nil {
				if errors.IsCancelled(err) {
					return err
				}
				return fmt.Errorf(MsgErrInstall, err)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&color, "color", config.ColorAuto, MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&packageRoot, "package-root", "", MsgFlagPackageRoot)

	// Install flags
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	rootCmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	rootCmd.Flags().StringSliceVarP(&adapterIDs, "adapters", "a", nil, MsgFlagAdapters)
	_ = rootCmd.RegisterFlagCompletionFunc("adapters", adapterCompletion)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd(rt))
	rootCmd.AddCommand(newDocsCmd(rt))
	rootCmd.AddCommand(newGenConfigCmd(rt))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig layers explicitly set flags over the file and env configuration.
func loadConfig(cmd *cobra.Command, configPath, color, packageRoot string) (*config.Config, error) {
	cfg, err := config.LoadConfiguration(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Output.Color = color
	}
	if flags.Changed("package-root") {
		cfg.PackageRoot = packageRoot
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// adapterCompletion completes adapter ids for --adapters
func adapterCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	catalog, err := config.LoadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, a := range catalog.Adapters {
		completions = append(completions, a.ID+"\t"+a.Name)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// resolveDirArg turns an optional directory argument into an absolute path.
func resolveDirArg(args []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(MsgErrWorkDir, err)
	}
	if len(args) == 0 {
		return wd, nil
	}
	return paths.ResolveTarget(args[0], wd), nil
}
