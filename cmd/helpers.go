package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"gcpkit/auth"
	"gcpkit/export"
	"gcpkit/tools"
)

func newToolset(ctx context.Context) (*tools.Toolset, error) {
	creds, err := auth.LoadCredentials(ctx, viper.GetString("credentials"))
	if err != nil {
		return nil, err
	}
	return tools.New(ctx, auth.NewClientFactory(creds))
}

func requireProject() (string, error) {
	if p := viper.GetString("project"); p != "" {
		return p, nil
	}
	return "", errors.New("project is required (set --project or GCPKIT_PROJECT)")
}

// wantTable reports whether the command should render its own table instead
// of a serialized dump.
func wantTable() bool {
	out := viper.GetString("output")
	return out != "json" && out != "yaml"
}

// emit serializes v to stdout in the selected non-table format.
func emit(v any) error {
	if viper.GetString("output") == "yaml" {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// saveRecords merges records for the project into the default export file.
func saveRecords(records []export.Record, projectID string) error {
	path, err := export.DefaultPath()
	if err != nil {
		return err
	}
	return export.MergeForProject(path, records, projectID)
}
