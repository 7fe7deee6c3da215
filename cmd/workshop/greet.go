package main

import (
	"github.com/aretw0/workshop/internal/cli"
	"github.com/aretw0/workshop/pkg/action"
	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Run the greeter action",
	Long: `Prints "Hello, <name>!". Inside a GitHub Actions runner the name comes from
the action's "name" input (INPUT_NAME); --name overrides it for local runs.
Failures are reported as an ::error:: workflow command and exit with status 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		// action.yml marks "name" required, but the runner does not enforce it
		// and an empty name is still greeted.
		host := action.NewGitHubHost(action.WithCommandWriter(cmd.OutOrStdout()))

		var inputs action.Inputs = host
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			inputs = cli.StaticInputs{action.InputName: name}
		}

		g := action.NewGreeter(action.Sanitize(inputs), host)
		g.Out = cmd.OutOrStdout()
		g.Logger = logger

		if code := g.Run(); code != action.ExitSuccess {
			return &cli.ExitError{Code: code}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(greetCmd)
	greetCmd.Flags().StringP("name", "n", "", "Name to greet instead of the INPUT_NAME input")
}
