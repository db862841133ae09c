package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folder-icon/internal/config"
	"folder-icon/internal/desktopini"
	"folder-icon/internal/foldericon"
	"folder-icon/internal/iconbuilder"
	"folder-icon/internal/logger"
	"folder-icon/internal/shell"
)

// Explorer launches (drag-and-drop onto the exe, Send To, context menus) are
// normal invocations, so cobra's "started by Explorer" exit is switched off.
func init() {
	cobra.MousetrapHelpText = ""
}

// serviceFactory builds the set/remove pipeline for a loaded configuration.
type serviceFactory func(cfg config.Config) *foldericon.Service

// newService wires the real OS-backed components.
func newService(cfg config.Config) *foldericon.Service {
	return &foldericon.Service{
		Shell: shell.New(),
		Icons: iconbuilder.New(iconbuilder.Interpolator(cfg.Resample)),
		Ini:   desktopini.NewWriter(cfg.FolderType),
	}
}

// newRootCmd builds the `folder-icon` command.
// Positional arguments are handled by dispatch; the flags only tune logging and configuration.
func newRootCmd(factory serviceFactory) *cobra.Command {
	// debug flag indicates whether debug logging should be enabled.
	var debug bool
	// configPath holds the path to the optional YAML configuration file.
	var configPath string
	// cfg is filled in by PersistentPreRun before Run executes.
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   `folder-icon "<filename>" | /remove "<directory>"`,
		Short: "Set or clear a custom folder icon", // Short description shown in help output
		Args:  cobra.ArbitraryArgs,

		// Failures are reported on stdout by the components themselves; the exit status stays 0.
		SilenceErrors: true,
		SilenceUsage:  true,

		// PersistentPreRun loads the config file and initializes the logger
		// before the positional arguments are dispatched.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfg, err = config.LoadConfig(configPath)
			logger.Init(debug || cfg.Debug)
			if err != nil {
				logger.Error("[ERROR] %v; using defaults\n", err)
			}
			logger.Debug("[DEBUG] Config: %+v\n", cfg)
		},

		Run: func(cmd *cobra.Command, args []string) {
			if err := dispatch(cmd.OutOrStdout(), args, factory(cfg)); err != nil {
				panic(err)
			}
		},
	}

	// Register the global flags
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to configuration file")

	// Flags are only recognized before the first positional argument, so a
	// filename or directory starting with '-' reaches dispatch unchanged
	rootCmd.Flags().SetInterspersed(false)

	// A flag parse error is a malformed invocation: print usage, keep exit status 0
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		logger.Debug("[DEBUG] %v\n", err)
		printUsage(cmd.OutOrStdout())
		return nil
	})

	// --help prints the same usage text as a malformed invocation, followed by the flags
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		printUsage(out)
		fmt.Fprintf(out, "\nFlags:\n%s", cmd.Flags().FlagUsages())
	})

	return rootCmd
}

// Execute builds the root command and runs it against os.Args.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Errors are ignored here with `_ =` since every failure is already reported on stdout.
	_ = newRootCmd(newService).Execute()
}
