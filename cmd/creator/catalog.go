package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the reference catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the catalog and report what it contains",
	RunE:  runCatalogCheck,
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
}

func runCatalogCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	snap, err := catalog.Load(cmd.Context(), cfg.Catalog.Dir)
	if err != nil {
		return err
	}

	mechanic := 0
	for _, p := range snap.Parts {
		if p.Mechanic {
			mechanic++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "catalog %s\n", cfg.Catalog.Dir)
	fmt.Fprintf(out, "  parts:       %d (%d mechanic)\n", len(snap.Parts), mechanic)
	fmt.Fprintf(out, "  feats:       %d\n", len(snap.Feats))
	fmt.Fprintf(out, "  skills:      %d\n", len(snap.Skills))
	fmt.Fprintf(out, "  properties:  %d\n", len(snap.Properties))
	fmt.Fprintf(out, "  progression: %d levels\n", snap.Progression.Len())
	return nil
}
