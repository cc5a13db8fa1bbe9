package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "luckymail",
	Short: "Email a random row from a CSV file",
	Long: `luckymail picks one row from a CSV file at random, renders it into an
HTML template and sends it by email. Outside production mode the email is
written to a local debug file instead.`,
	SilenceUsage: true,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one email and exit",
	RunE:  runSend,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Send one email per cron tick until interrupted",
	RunE:  runSchedule,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./luckymail.yaml)")
	pf.String("csv", "", "CSV file path or s3://bucket/key URI")
	pf.String("template", "", "template file path or s3://bucket/key URI")
	pf.String("subject", "", "email subject (overrides template frontmatter)")
	pf.StringArray("var", nil, "placeholder mapping as name=column (repeatable)")
	pf.Bool("no-header", false, "treat the first CSV row as data")
	pf.String("debug-output", "", "file written when production mode is off")
	pf.Bool("prod", false, "send for real (same as PROD_MODE=true)")

	scheduleCmd.Flags().String("cron", "", "cron expression, e.g. \"0 8 * * *\" or \"@every 1h\"")
	scheduleCmd.Flags().Bool("run-now", false, "send once immediately on start")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
