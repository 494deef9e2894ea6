package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cloudpayments_bridge/internal/hostclient"
)

var Version = "dev"

func main() {
	var (
		baseURL string
		timeout time.Duration
	)

	rootCmd := &cobra.Command{
		Use:     "bridgectl",
		Short:   "Drive a running bridge as the native host would",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", envOr("BRIDGE_URL", "http://localhost:8080"), "Bridge base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Request timeout")

	client := func() *hostclient.Client { return hostclient.New(baseURL, timeout) }

	rootCmd.AddCommand(callCmd(client))
	rootCmd.AddCommand(attachCmd(client))
	rootCmd.AddCommand(detachCmd(client))
	rootCmd.AddCommand(activityResultCmd(client))
	rootCmd.AddCommand(surfacesCmd(client))
	rootCmd.AddCommand(challengeCmd(client))
	rootCmd.AddCommand(flowCmd(client))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func callCmd(client func() *hostclient.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "call [method] [json-arguments]",
		Short: "Invoke a channel method and wait for its reply",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := ""
			if len(args) == 2 {
				body = args[1]
			}
			return printResponse(client().Call(cmd.Context(), args[0], body))
		},
	}
}

func attachCmd(client func() *hostclient.Client) *cobra.Command {
	var configChange bool
	cmd := &cobra.Command{
		Use:   "attach [activity-id]",
		Short: "Attach an activity to the bridge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Attach(cmd.Context(), args[0], configChange))
		},
	}
	cmd.Flags().BoolVar(&configChange, "config-change", false, "Reattach after a configuration change")
	return cmd
}

func detachCmd(client func() *hostclient.Client) *cobra.Command {
	var configChange bool
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Detach the current activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Detach(cmd.Context(), configChange))
		},
	}
	cmd.Flags().BoolVar(&configChange, "config-change", false, "Detach for a configuration change")
	return cmd
}

func activityResultCmd(client func() *hostclient.Client) *cobra.Command {
	var (
		requestCode int
		resultCode  int
		data        string
	)
	cmd := &cobra.Command{
		Use:   "activity-result",
		Short: "Deliver an activity result (e.g. the Google Pay sheet outcome)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().ActivityResult(cmd.Context(), requestCode, resultCode, data))
		},
	}
	cmd.Flags().IntVar(&requestCode, "request-code", 991, "Request code")
	cmd.Flags().IntVar(&resultCode, "result-code", -1, "Result code (-1 OK, 0 canceled, 1 error)")
	cmd.Flags().StringVar(&data, "data", "", `Result data, e.g. {"paymentData":{...}}`)
	return cmd
}

func surfacesCmd(client func() *hostclient.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "surfaces",
		Short: "List surfaces shown on the current activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Surfaces(cmd.Context()))
		},
	}
}

func challengeCmd(client func() *hostclient.Client) *cobra.Command {
	var (
		md    string
		paRes string
		html  string
	)
	cmd := &cobra.Command{
		Use:       "3ds [transaction-id] [complete|fail|cancel]",
		Short:     "Answer a shown 3-D Secure challenge",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"complete", "fail", "cancel"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			switch args[1] {
			case "complete":
				body, _ = json.Marshal(map[string]string{"md": md, "paRes": paRes})
			case "fail":
				if html != "" {
					body, _ = json.Marshal(map[string]string{"html": html})
				}
			}
			return printResponse(client().Challenge(cmd.Context(), args[0], args[1], string(body)))
		},
	}
	cmd.Flags().StringVar(&md, "md", "", "MD returned by the ACS")
	cmd.Flags().StringVar(&paRes, "pares", "", "PaRes returned by the ACS")
	cmd.Flags().StringVar(&html, "html", "", "Failure page")
	return cmd
}

func flowCmd(client func() *hostclient.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "flow [id]",
		Short: "Show a resolved flow from the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResponse(client().Flow(cmd.Context(), args[0]))
		},
	}
}

func printResponse(resp hostclient.Response, err error) error {
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if json.Indent(&pretty, resp.Body, "", "  ") != nil {
		pretty.Reset()
		pretty.Write(resp.Body)
	}
	fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, pretty.String())
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
