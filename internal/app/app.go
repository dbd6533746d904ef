// Package app wires the cobra commands around the scanner, the terminator,
// and the interactive table.
package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mehulj/portreap/internal/output"
	"github.com/mehulj/portreap/internal/scan"
	"github.com/mehulj/portreap/internal/terminate"
	"github.com/mehulj/portreap/internal/tui"
	"github.com/mehulj/portreap/pkg/model"
)

var versionString = "dev"

// SetVersionBuildCommitString composes the -ldflags build metadata into the
// string shown by --version and the TUI header.
func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		return
	}
	versionString = version
	if commit != "" && buildDate != "" {
		versionString += fmt.Sprintf(" (%s, %s)", commit, buildDate)
	} else if commit != "" {
		versionString += fmt.Sprintf(" (%s)", commit)
	}
}

var portSpecs []string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portreap",
		Short: "Inspect and reap TCP listeners in your port ranges",
		Long: "portreap shows which processes are listening on TCP ports inside the\n" +
			"ranges you care about, and can kill an owner with a graceful-then-forceful\n" +
			"escalation. Without a subcommand it opens the interactive table.",
		Version:      versionString,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := watchedRanges()
			if err != nil {
				return err
			}
			return tui.Start(versionString, ranges)
		},
	}
	cmd.PersistentFlags().StringArrayVarP(&portSpecs, "ports", "p", nil,
		`port ranges to watch, e.g. -p 3000-4000 -p 8080 (default: all ports)`)
	cmd.AddCommand(newScanCmd(), newKillCmd())
	return cmd
}

// watchedRanges parses -p flags, defaulting to the whole port space when the
// user named none. The default keeps the empty-ranges short-circuit in the
// scanner meaningful: only an explicit empty call skips the OS queries.
func watchedRanges() ([]model.PortRange, error) {
	ranges, err := model.ParseRanges(portSpecs)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		ranges = []model.PortRange{{Start: 1, End: 65535}}
	}
	return ranges, nil
}

func newScanCmd() *cobra.Command {
	var jsonOut bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan once and print the listeners",
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := watchedRanges()
			if err != nil {
				return err
			}
			infos, err := scan.New().Scan(ranges)
			if err != nil {
				return err
			}
			if jsonOut {
				s, err := output.ToJSON(infos)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			output.RenderTable(cmd.OutOrStdout(), infos, !noColor)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print listeners as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	return cmd
}

func newKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill <pid>",
		Short: "Terminate the process with the given PID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid pid %q", args[0])
			}
			if err := terminate.New().Kill(uint32(pid)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "killed %d\n", pid)
			return nil
		},
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
