package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dochub/internal/config"
	"dochub/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached layout state and log files",
	Long: `Removes the persisted per-space layout state (pane widths, chat position)
and all debug log files. Credentials and server settings are kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE:          runClean,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("error locating config dir: %w", err)
	}
	storePath := filepath.Join(dir, "store.json")

	_, storeErr := os.Stat(storePath)
	hasStore := storeErr == nil

	fmt.Println("This will clean:")
	if hasStore {
		fmt.Printf("  - %s\n", storePath)
	}
	fmt.Printf("  - Log files at %s*\n", logger.DefaultLogPath)

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if hasStore {
		if err := os.Remove(storePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing layout store: %v\n", err)
		} else {
			fmt.Println("Layout store removed.")
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	if logsCleared > 0 {
		fmt.Printf("Removed %d log file(s).\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
