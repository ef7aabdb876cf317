package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the autograd command tree.
func NewRootCmd(version string) *cobra.Command {
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "autograd",
		Short:         "Reverse-mode automatic differentiation over vectors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func(cmd *cobra.Command) *Output {
		return NewOutput(jsonOutput, cmd.OutOrStdout())
	}

	rootCmd.AddCommand(
		NewLogRegCmd(outputFn),
		NewTrainCmd(outputFn),
		newVersionCmd(version),
	)

	return rootCmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autograd %s\n", version)
		},
	}
}
