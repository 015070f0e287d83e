package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archiveinsight/backend/internal/infrastructure/archive"
)

var archiveListJSON bool

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and seed the project archive",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived projects in archive order",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

var archiveSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference projects into the archive",
	Long: `Upserts the built-in reference projects. Existing projects with the same
id are updated in place; other projects are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runArchiveSeed,
}

func init() {
	archiveListCmd.Flags().BoolVar(&archiveListJSON, "json", false, "output projects as JSON")
	archiveCmd.AddCommand(archiveListCmd, archiveSeedCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newServices(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	projects, err := svc.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing archive: %w", err)
	}

	if archiveListJSON {
		out, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal projects: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	if len(projects) == 0 {
		cmd.Println("Archive is empty.")
		return nil
	}

	for _, p := range projects {
		cmd.Printf("%-10s %d  %-24s %s\n", p.ID, p.Year, p.Branch, p.Title)
	}
	cmd.Printf("\n%d projects\n", len(projects))
	return nil
}

func runArchiveSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newServices(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	seed := archive.SeedProjects()
	for _, p := range seed {
		if err := svc.store.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seeding %s: %w", p.ID, err)
		}
	}

	cmd.Printf("Seeded %d projects\n", len(seed))
	return nil
}
