package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects the credentials can see.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		projects, err := ts.ListProjects(cmd.Context())
		if err != nil {
			return err
		}
		if !wantTable() {
			return emit(projects)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Project ID", "Name", "State")
		for _, p := range projects {
			_ = table.Append(p.ProjectID, p.Name, p.State)
		}
		_ = table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
