// Command hwctl-log is a tool for viewing and analyzing hwctl lifecycle
// log files.
//
// Log files are created by passing -log to hwctl-device, or by wiring an
// hwlog.FileLogger into a controller.
//
// Usage:
//
//	hwctl-log <command> [flags] <file.hlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	hwctl-log view device.hlog
//
//	# View only boot attempts
//	hwctl-log view -category boot_attempt device.hlog
//
//	# View one controller session
//	hwctl-log view -session 3f2a9c41-0000-4000-8000-000000000000 device.hlog
//
//	# Show statistics
//	hwctl-log stats device.hlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hwctl-project/hwctl-go/cmd/hwctl-log/commands"
)

const usage = `hwctl-log - hwctl Lifecycle Log Analyzer

Usage:
  hwctl-log <command> [flags] <file.hlog>

Commands:
  view     View log file in human-readable format
  stats    Show statistics about the log file

Use "hwctl-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `hwctl-log view - View log file in human-readable format

Usage:
  hwctl-log view [flags] <file.hlog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (boot_attempt, poll, command, state, error)")
	session := fs.String("session", "", "Filter by session ID")
	device := fs.String("device", "", "Filter by device ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	filter, err := commands.ParseViewFilter(*category, *session, *device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `hwctl-log stats - Show statistics about the log file

Usage:
  hwctl-log stats <file.hlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
