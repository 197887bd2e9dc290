package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"dochub/internal/auth"
	"dochub/internal/config"
)

var loginCmd = &cobra.Command{
	Use:           "login",
	Short:         "Log in to the Doc Hub server",
	RunE:          runLogin,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logoutCmd = &cobra.Command{
	Use:           "logout",
	Short:         "Discard the stored credentials",
	RunE:          runLogout,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	fmt.Println("Opening your browser to log in...")
	tok, err := auth.NewFlow(cfg.GetServerURL()).Login(cmd.Context(), openBrowser)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg.SetToken(tok)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving credentials: %w", err)
	}

	if id, ok := auth.IdentityFromToken(tok); ok {
		fmt.Printf("Logged in as %s.\n", id.DisplayName())
	} else {
		fmt.Println("Logged in.")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfg.ClearToken()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Println("Logged out.")
	return nil
}

// openBrowser launches the system browser. When that fails the URL is
// printed so the user can open it by hand.
func openBrowser(url string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	if err := c.Start(); err != nil {
		fmt.Printf("Could not open a browser, visit:\n  %s\n", url)
	}
	return nil
}
