package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gcpkit/export"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Manage Cloud Storage buckets.",
}

var bucketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List buckets in the project.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		buckets, err := ts.ListBuckets(cmd.Context(), project)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(buckets))
			for _, b := range buckets {
				records = append(records, export.Record{Kind: "bucket", Project: project, Name: b})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(buckets)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name")
		for _, b := range buckets {
			_ = table.Append(b)
		}
		_ = table.Render()
		return nil
	},
}

var bucketsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bucket.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		location, _ := cmd.Flags().GetString("location")
		class, _ := cmd.Flags().GetString("storage-class")
		versioning, _ := cmd.Flags().GetBool("versioning")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.CreateBucket(cmd.Context(), project, args[0], location, class, versioning)
		if err != nil {
			return err
		}
		if !wantTable() {
			return emit(resp)
		}
		fmt.Println(resp.Message)
		return nil
	},
}

var bucketsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an empty bucket.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.DeleteBucket(cmd.Context(), project, args[0])
		if err != nil {
			return err
		}
		if !wantTable() {
			return emit(resp)
		}
		fmt.Println(resp.Message)
		return nil
	},
}

func init() {
	bucketsListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	bucketsCreateCmd.Flags().String("location", "", "bucket location, e.g. US or europe-west1")
	bucketsCreateCmd.Flags().String("storage-class", "STANDARD", "STANDARD, NEARLINE, COLDLINE or ARCHIVE")
	bucketsCreateCmd.Flags().Bool("versioning", false, "enable object versioning")

	bucketsCmd.AddCommand(bucketsListCmd, bucketsCreateCmd, bucketsDeleteCmd)
	rootCmd.AddCommand(bucketsCmd)
}
