package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Toggle the simulated network",
	Long: `Read or write the desktop's Wi-Fi flag. Open browsers pick up changes
within a second.`,
}

var wifiOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Mark the network as connected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setWiFi(cmd, true)
	},
}

var wifiOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Mark the network as disconnected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setWiFi(cmd, false)
	},
}

var wifiResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored flag (reads as connected)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.ConnectivityUC.Reset(a.Ctx()); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "wifi: default (connected)")
		return err
	},
}

var wifiStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored flag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		status, err := a.ConnectivityUC.Status(a.Ctx())
		if err != nil {
			return err
		}

		state := "off"
		if status.Connected {
			state = "on"
		}
		source := "default"
		if status.Explicit {
			source = fmt.Sprintf("stored %q", status.Raw)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wifi: %s (%s)\n", state, source)
		return err
	},
}

func init() {
	rootCmd.AddCommand(wifiCmd)
	wifiCmd.AddCommand(wifiOnCmd, wifiOffCmd, wifiResetCmd, wifiStatusCmd)
}

func setWiFi(cmd *cobra.Command, connected bool) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if connected {
		err = a.ConnectivityUC.Enable(a.Ctx())
	} else {
		err = a.ConnectivityUC.Disable(a.Ctx())
	}
	if err != nil {
		return err
	}

	state := "off"
	if connected {
		state = "on"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wifi: %s\n", state)
	return err
}
