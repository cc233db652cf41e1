package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgelight/creator-api/internal/services/creator"
)

var statsCmd = &cobra.Command{
	Use:   "stats <entity-id>",
	Short: "Print the derived stats of a saved entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	out, err := a.service.GetEntity(cmd.Context(), &creator.GetEntityInput{ID: args[0]})
	if err != nil {
		return err
	}

	payload := struct {
		ID    string      `json:"id"`
		Name  string      `json:"name"`
		Kind  string      `json:"kind"`
		Level float64     `json:"level"`
		Stats interface{} `json:"stats"`
	}{
		ID:    out.Entity.ID,
		Name:  out.Entity.Name,
		Kind:  string(out.Entity.Kind),
		Level: out.Entity.Level,
		Stats: out.Stats,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render stats: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
