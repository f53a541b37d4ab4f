package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/acos-calculator/internal/config"
)

var version = "0.2.0"

// rootOptions are shared by all subcommands
type rootOptions struct {
	configPath string
	loader     *config.Loader
}

func (o *rootOptions) loadConfig() (*config.Configuration, error) {
	path := o.configPath
	if path == "" {
		path = o.loader.Getenv("ACOS_CONFIG")
	}
	return o.loader.Load(path)
}

func newRootCmd(loader *config.Loader) *cobra.Command {
	opts := &rootOptions{loader: loader}
	cmd := &cobra.Command{
		Use:           "acos",
		Short:         "Amazon ACoS calculator (CLI or web)",
		Long:          "Calculates Advertising Cost of Sales: (ad spend ÷ ad sales or revenue) × 100.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("acos v{{.Version}}\n")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default $ACOS_CONFIG)")

	cmd.AddCommand(
		newCalcCmd(opts),
		newServeCmd(opts),
		newVariantsCmd(opts),
	)
	return cmd
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := newRootCmd(config.NewLoader()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
