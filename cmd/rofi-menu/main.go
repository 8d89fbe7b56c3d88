// rofi-menu is a pipe filter around the rofi dmenu protocol: candidates
// come in one per line on stdin, the selection goes out on stdout.
// Exit status: 0 selection made, 1 no selection, 2 hard error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/rofi/pkg/config"
)

const version = "0.1.0"

// errNoSelection маркира отказ/празен избор - exit code 1 без съобщение
var errNoSelection = errors.New("no selection")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	root := newRootCmd(cfg)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNoSelection) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := optionsFromConfig(&cfg.Selector)

	root := &cobra.Command{
		Use:           "rofi-menu",
		Short:         "Show a rofi menu for candidates read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.command, "command", opts.command, "selector executable (must speak the rofi dmenu protocol)")
	pf.StringVarP(&opts.prompt, "prompt", "p", opts.prompt, "prompt of the menu window")
	pf.StringVar(&opts.theme, "theme", opts.theme, "rofi theme name")
	pf.BoolVar(&opts.caseSensitive, "case-sensitive", opts.caseSensitive, "match case sensitively")
	pf.BoolVar(&opts.markup, "markup", opts.markup, "treat candidates as pango markup rows")
	pf.BoolVar(&opts.password, "password", opts.password, "obscure typed input")
	pf.IntVar(&opts.lines, "lines", opts.lines, "visible lines (0 = candidate count)")
	pf.StringVar(&opts.widthMode, "width-mode", opts.widthMode, "width override: none, percentage, pixels or characters")
	pf.IntVar(&opts.widthValue, "width-value", opts.widthValue, "width value for --width-mode")

	root.AddCommand(newPickCmd(opts))
	root.AddCommand(newIndexCmd(opts))
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newPickCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Print the chosen candidate text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := readCandidates(cmd.InOrStdin())
			if err != nil {
				return err
			}

			sel, err := buildSelector(opts, candidates)
			if err != nil {
				return err
			}

			choice, err := sel.Run()
			if err != nil {
				return mapSelectorErr(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), choice)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", opts.format, "answer format: text, stripped or input")
	return cmd
}

func newIndexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Print the zero-based index of the chosen candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := readCandidates(cmd.InOrStdin())
			if err != nil {
				return err
			}

			sel, err := buildSelector(opts, candidates)
			if err != nil {
				return err
			}

			idx, err := sel.RunIndex()
			if err != nil {
				return mapSelectorErr(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to " + config.GetUserConfigPath(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", config.GetUserConfigPath())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rofi-menu version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rofi-menu version %s\n", version)
		},
	}
}
