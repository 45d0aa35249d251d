package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "defter-cli",
		Short: "Defter CLI tool",
		Long:  `A command line interface for interacting with the Defter bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Defter API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(statementCmd())
	rootCmd.AddCommand(cashCmd())
	rootCmd.AddCommand(checksCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func statementCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "statement <customer-id>",
		Short: "Print a customer statement of account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/customers/" + url.PathEscape(args[0]) + "/statement"
			if from != "" || to != "" {
				path += "?" + url.Values{"from": {from}, "to": {to}}.Encode()
			}
			fetchAndPrint(path)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")

	return cmd
}

func cashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Cash register operations",
	}

	var from, to string

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the cash register summary",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/cash/summary"
			if from != "" || to != "" {
				path += "?" + url.Values{"from": {from}, "to": {to}}.Encode()
			}
			fetchAndPrint(path)
		},
	}

	summaryCmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")

	cmd.AddCommand(summaryCmd)

	return cmd
}

func checksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "Check portfolio operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List instruments held in the portfolio",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/checks/")
		},
	}

	breakdownCmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Print the portfolio breakdown by kind and currency",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/checks/breakdown")
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(breakdownCmd)

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/health")
		},
	}
}

func fetchAndPrint(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 500))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
