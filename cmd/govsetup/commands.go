package govsetup

import (
	"fmt"

	"os"

	"github.com/arthur-debert/govsetup/internal/version"
	"github.com/arthur-debert/govsetup/pkg/commands/genconfig"
	"github.com/arthur-debert/govsetup/pkg/commands/status"
	"github.com/arthur-debert/govsetup/pkg/docs"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/arthur-debert/govsetup/pkg/ui/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newStatusCmd(rt *appState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status [dir]",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			target, err := resolveDirArg(args)
			if err != nil {
				return err
			}
			log.Info().Str("target", target).Msg("Checking status")

			result, err := status.Status(status.StatusOptions{
				Catalog:    rt.catalog,
				Target:     target,
				FileSystem: rt.fs,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			return render.RenderStatus(cmd.OutOrStdout(), f, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newDocsCmd(rt *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "docs [dir]",
		Short:   MsgDocsShort,
		Long:    MsgDocsLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveDirArg(args)
			if err != nil {
				return err
			}

			content, err := docs.Load(rt.fs, target, rt.catalog.Core.Index)
			if err != nil {
				return fmt.Errorf(MsgErrDocs, err)
			}

			renderer := docs.NewRenderer(styles.ColorEnabled(rt.cfg.Output.Color, cmd.OutOrStdout()))
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.Render(content))
			return err
		},
	}
}

func newGenConfigCmd(rt *appState) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf(MsgErrWorkDir, err)
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Dir:        wd,
				Write:      write,
				FileSystem: rt.fs,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			out := cmd.OutOrStdout()
			if !write {
				_, err = fmt.Fprint(out, result.ConfigContent)
				return err
			}
			if len(result.FilesWritten) == 0 {
				_, err = fmt.Fprintf(out, MsgConfigExists, genconfig.FileName)
				return err
			}
			for _, path := range result.FilesWritten {
				if _, err := fmt.Fprintf(out, MsgConfigWritten, path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
