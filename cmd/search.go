package cmd

import (
	"fmt"
	"sort"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"gcpkit/export"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search saved resources with a fuzzy finder.",
	Long: `search looks through the local resource file written by the list
commands' --save flag. With a query argument it prints ranked matches;
without one it opens an interactive finder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			var err error
			path, err = export.DefaultPath()
			if err != nil {
				return err
			}
		}
		records, err := export.Load(path)
		if err != nil {
			return fmt.Errorf("loading resource file: %w", err)
		}
		if len(records) == 0 {
			return fmt.Errorf("no saved resources in %s, run a list command with --save first", path)
		}

		if len(args) == 1 {
			return rankSearch(records, args[0])
		}

		idx, err := fuzzyfinder.Find(
			records,
			func(i int) string {
				return fmt.Sprintf("%s :: %s :: %s", records[i].Kind, records[i].Name, records[i].Project)
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				r := records[i]
				out := fmt.Sprintf("Name: %s\nKind: %s\nProject: %s\nRegion: %s", r.Name, r.Kind, r.Project, r.Region)
				for k, v := range r.Attributes {
					out += fmt.Sprintf("\n%s: %s", k, v)
				}
				return out
			}),
		)
		if err != nil {
			if err == fuzzyfinder.ErrAbort {
				return nil
			}
			return err
		}
		fmt.Printf("%s/%s (%s)\n", records[idx].Kind, records[idx].Name, records[idx].Project)
		return nil
	},
}

func rankSearch(records []export.Record, query string) error {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)
	for _, rank := range ranks {
		r := records[rank.OriginalIndex]
		fmt.Printf("%s/%s (%s)\n", r.Kind, r.Name, r.Project)
	}
	return nil
}

func init() {
	searchCmd.Flags().String("file", "", "resource file to search (default the standard location)")
	rootCmd.AddCommand(searchCmd)
}
