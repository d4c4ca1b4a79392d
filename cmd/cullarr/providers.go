package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/cullarr/internal/providers"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect streaming providers for your locale",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all providers available in your locale",
	RunE:  runProvidersList,
}

var providersCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configured provider names",
	RunE:  runProvidersCheck,
}

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersCheckCmd)
}

func runProvidersList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	directory, err := a.dir.Providers(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(directory))
	for _, p := range directory {
		configured := ""
		if a.catalog.Contains(p.ID) {
			configured = "yes"
		}
		rows = append(rows, []string{p.ClearName, p.ShortName, p.TechnicalName, configured})
	}
	fmt.Println(renderTable([]string{"Provider", "Short", "Technical", "Configured"}, rows))
	return nil
}

func runProvidersCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	directory, err := a.dir.Providers(ctx)
	if err != nil {
		return err
	}

	_, unknown := providers.Resolve(a.cfg.General.Providers, directory)
	if len(unknown) == 0 {
		fmt.Printf("All %d configured providers are valid for %s.\n", len(a.cfg.General.Providers), a.dir.Locale())
		return nil
	}

	for _, name := range unknown {
		if suggestion := providers.Suggest(name, directory); suggestion != "" {
			fmt.Printf("Unknown provider %q. Did you mean %q?\n", name, suggestion)
		} else {
			fmt.Printf("Unknown provider %q.\n", name)
		}
	}
	return fmt.Errorf("%d unknown providers", len(unknown))
}
