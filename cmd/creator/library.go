package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/services/creator"
)

var libraryOwner string

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect and manage saved entities",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an owner's saved entities",
	RunE:  runLibraryList,
}

var libraryPublicCmd = &cobra.Command{
	Use:   "public",
	Short: "List the shared public library",
	RunE:  runLibraryPublic,
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <entity-id>",
	Short: "Delete a saved entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryDelete,
}

func init() {
	libraryListCmd.Flags().StringVar(&libraryOwner, "owner", "", "owner id (required)")
	_ = libraryListCmd.MarkFlagRequired("owner")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryPublicCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	out, err := a.service.ListLibrary(cmd.Context(), &creator.ListLibraryInput{OwnerID: libraryOwner})
	if err != nil {
		return err
	}

	printEntityTable(cmd, out.Entities)
	return nil
}

func runLibraryPublic(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	out, err := a.service.ListPublic(cmd.Context(), &creator.ListPublicInput{})
	if err != nil {
		return err
	}

	printEntityTable(cmd, out.Entities)
	return nil
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}

	if _, err := a.service.DeleteEntity(cmd.Context(), &creator.DeleteEntityInput{ID: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func printEntityTable(cmd *cobra.Command, list []*entities.Entity) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tLEVEL\tPUBLIC")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%t\n", e.ID, e.Name, e.Kind, e.Level, e.Public)
	}
	_ = w.Flush()
}
