package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gcpkit/export"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Inspect VPC networks.",
}

var networksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List VPC networks with their subnets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := requireProject()
		if err != nil {
			return err
		}
		ts, err := newToolset(cmd.Context())
		if err != nil {
			return err
		}
		networks, err := ts.ListVPCNetworks(cmd.Context(), project)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(networks))
			for _, n := range networks {
				records = append(records, export.Record{
					Kind: "network", Project: project, Name: n.Name,
					Attributes: map[string]string{"subnets": strconv.Itoa(len(n.Subnets))},
				})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(networks)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Network", "Subnet", "Region", "CIDR", "Private Google Access")
		for _, n := range networks {
			if len(n.Subnets) == 0 {
				_ = table.Append(n.Name, "-", "-", "-", "-")
				continue
			}
			for _, s := range n.Subnets {
				_ = table.Append(n.Name, s.Name, s.Region, s.IPCIDRRange, strconv.FormatBool(s.PrivateIPGoogleAccess))
			}
		}
		_ = table.Render()
		return nil
	},
}

var lbsCmd = &cobra.Command{
	Use:   "lbs",
	Short: "Inspect load balancers.",
}

var lbsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List forwarding rules in a region, or everywhere plus global.",
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
		lbs, err := ts.ListLoadBalancers(cmd.Context(), project, region)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			records := make([]export.Record, 0, len(lbs))
			for _, lb := range lbs {
				records = append(records, export.Record{
					Kind: "load_balancer", Project: project, Name: lb.Name, Region: lb.Region,
					Attributes: map[string]string{"scheme": lb.LoadBalancingScheme, "ip": lb.IPAddress},
				})
			}
			if err := saveRecords(records, project); err != nil {
				return err
			}
		}

		if !wantTable() {
			return emit(lbs)
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Region", "Type", "IP", "Protocol", "Scheme")
		for _, lb := range lbs {
			_ = table.Append(lb.Name, lb.Region, string(lb.Type), lb.IPAddress, lb.IPProtocol, lb.LoadBalancingScheme)
		}
		_ = table.Render()
		return nil
	},
}

func init() {
	networksListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	networksCmd.AddCommand(networksListCmd)

	lbsListCmd.Flags().String("region", "", "restrict to one region")
	lbsListCmd.Flags().Bool("save", false, "merge results into the local resource file")
	lbsCmd.AddCommand(lbsListCmd)

	rootCmd.AddCommand(networksCmd, lbsCmd)
}
