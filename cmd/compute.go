package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gcpkit/export"
	"gcpkit/tools"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "Manage Compute Engine instances.",
}

var instancesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instance names in a zone, or across all zones.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		zone, _ := cmd.Flags().GetString("zone")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		names, err := ts.ListInstances(cmd.Context(), project, zone)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(names))
			for _, n := range names {
				records = append(records, export.Record{Kind: "instance", Project: project, Name: n})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(names)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name")
		for _, n := range names {
			_ = table.Append(n)
		}
		_ = table.Render()
		return nil
	},
}

var instancesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an instance from an image family.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		p := tools.CreateInstanceParams{ProjectID: project, InstanceName: args[0]}
		p.Zone, _ = cmd.Flags().GetString("zone")
		p.MachineType, _ = cmd.Flags().GetString("machine-type")
		p.ImageFamily, _ = cmd.Flags().GetString("image-family")
		p.DiskSizeGB, _ = cmd.Flags().GetInt64("disk-size-gb")
		p.Network, _ = cmd.Flags().GetString("network")
		p.Subnetwork, _ = cmd.Flags().GetString("subnetwork")
		p.Tags, _ = cmd.Flags().GetStringSlice("tags")
		p.ServiceAccount, _ = cmd.Flags().GetString("service-account")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.CreateInstance(cmd.Context(), p)
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

var instancesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an instance.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		zone, _ := cmd.Flags().GetString("zone")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := ts.DeleteInstance(cmd.Context(), project, zone, args[0])
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

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "Inspect IP addresses.",
}

var addressesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reserved and in-use IP addresses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		region, _ := cmd.Flags().GetString("region")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		addrs, err := ts.ListIPAddresses(cmd.Context(), project, region)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(addrs))
			for _, a := range addrs {
				records = append(records, export.Record{
					Kind: "address", Project: project, Name: a.Name, Region: a.Region,
					Attributes: map[string]string{"address": a.Address, "type": string(a.Type)},
				})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(addrs)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Address", "Type", "Region", "Status", "Used By")
		for _, a := range addrs {
			usedBy := ""
			if len(a.UsedBy) > 0 {
				usedBy = a.UsedBy[0]
			}
			_ = table.Append(a.Name, a.Address, string(a.Type), a.Region, a.Status, usedBy)
		}
		_ = table.Render()
		return nil
	},
}

var disksCmd = &cobra.Command{
	Use:   "disks",
	Short: "Inspect persistent disks.",
}

var disksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persistent disks in a zone, or across all zones.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		zone, _ := cmd.Flags().GetString("zone")

		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		disks, err := ts.ListPersistentDisks(cmd.Context(), project, zone)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(disks))
			for _, d := range disks {
				records = append(records, export.Record{
					Kind: "disk", Project: project, Name: d.Name, Region: d.Region,
					Attributes: map[string]string{"zone": d.Zone, "type": d.Type, "size_gb": strconv.FormatInt(d.SizeGB, 10)},
				})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(disks)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Zone", "Type", "Size GB", "Status", "In Use")
		for _, d := range disks {
			_ = table.Append(d.Name, d.Zone, d.Type, strconv.FormatInt(d.SizeGB, 10), d.Status, strconv.FormatBool(d.InUse))
		}
		_ = table.Render()
		return nil
	},
}

func init() {
	instancesListCmd.Flags().String("zone", "", "restrict to one zone")
	instancesListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	instancesCreateCmd.Flags().String("zone", "", "zone to create the instance in")
	instancesCreateCmd.Flags().String("machine-type", "", "machine type, e.g. e2-medium")
	instancesCreateCmd.Flags().String("image-family", "", "boot image family, optionally project/family")
	instancesCreateCmd.Flags().Int64("disk-size-gb", 10, "boot disk size in GB")
	instancesCreateCmd.Flags().String("network", "default", "VPC network name")
	instancesCreateCmd.Flags().String("subnetwork", "", "subnetwork name")
	instancesCreateCmd.Flags().StringSlice("tags", nil, "network tags")
	instancesCreateCmd.Flags().String("service-account", "", "service account email to attach")
	instancesDeleteCmd.Flags().String("zone", "", "zone of the instance")
	instancesCmd.AddCommand(instancesListCmd, instancesCreateCmd, instancesDeleteCmd)

	addressesListCmd.Flags().String("region", "", "restrict to one region")
	addressesListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	addressesCmd.AddCommand(addressesListCmd)

	disksListCmd.Flags().String("zone", "", "restrict to one zone")
	disksListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	disksCmd.AddCommand(disksListCmd)

	rootCmd.AddCommand(instancesCmd, addressesCmd, disksCmd)
}
