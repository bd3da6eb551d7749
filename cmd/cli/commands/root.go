// Package commands implements the CLI surface over the API client.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anoline/anoline/internal/api/v1/routes"
	"github.com/anoline/anoline/internal/constants"
	"github.com/anoline/anoline/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
)

var (
	// apiClient is the shared API client instance. Tests swap in a mock.
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		"Address of the API server (env: "+constants.EnvServerAddress+")")

	RootCmd.AddCommand(GetPlansCmd())
	RootCmd.AddCommand(GetGanttCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "anoline",
	Short: "Anoline CLI - process route compilation and load scheduling",
	Long:  `Anoline CLI compiles anodising process routes and manages scheduled load timelines through the Anoline API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Precedence: flag > env var > default.
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(constants.EnvServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
