package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harborwatch/route-risk/internal/refdata"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Inspect the port reference data",
}

var portsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := newRefStore()
		if err != nil {
			return err
		}
		for _, p := range ref.Ports() {
			fmt.Printf("%-22s %-5s %-20s %s\n", p.Key, p.Code, p.Country, p.Region)
		}
		return nil
	},
}

var portsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search ports by name, code, or country",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := newRefStore()
		if err != nil {
			return err
		}
		results := ref.Search(strings.Join(args, " "), 10)
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, res := range results {
			fmt.Printf("%.2f  %-22s %-5s %s\n",
				res.Score, res.Record.Key, res.Record.Code, res.Record.Country)
		}
		return nil
	},
}

var portsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one port with its security profile",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := newRefStore()
		if err != nil {
			return err
		}
		rec, err := ref.Lookup(strings.Join(args, " "))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"port":     rec,
			"security": ref.SecurityProfile(rec),
			"country":  ref.CountryProfile(rec.Country),
		})
	},
}

func newRefStore() (*refdata.Store, error) {
	rules, err := loadHazardRules()
	if err != nil {
		return nil, err
	}
	return refdata.New(rules)
}

func init() {
	portsCmd.AddCommand(portsListCmd, portsSearchCmd, portsShowCmd)
	rootCmd.AddCommand(portsCmd)
}
