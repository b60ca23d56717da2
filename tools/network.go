package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	compute "google.golang.org/api/compute/v1"

	"gcpkit/request"
)

// ListVPCNetworks lists every VPC network with its subnets. A subnet whose
// detail lookup fails is reported as a partial record with an "unknown"
// CIDR rather than failing the whole listing.
func (t *Toolset) ListVPCNetworks(ctx context.Context, projectID string) ([]VPCNetworkResponse, error) {
	req, err := request.NewProject(projectID)
	if err != nil {
		return nil, err
	}

	networks, err := t.Compute.ListNetworks(ctx, req.ProjectID)
	if err != nil {
		return nil, providerErr("list VPC networks", err)
	}

	var out []VPCNetworkResponse
	for _, network := range networks {
		var subnets []SubnetResponse
		for _, subnetURL := range network.Subnetworks {
			region, name, ok := parseSubnetURL(subnetURL)
			if !ok {
				continue
			}
			subnet, err := t.Compute.GetSubnetwork(ctx, req.ProjectID, region, name)
			if err != nil {
				log.Printf("Warning: failed to get subnet %s in region %s: %v", name, region, err)
				subnets = append(subnets, SubnetResponse{
					Name:        name,
					Region:      region,
					Network:     network.Name,
					IPCIDRRange: "unknown",
				})
				continue
			}
			subnets = append(subnets, mapSubnet(subnet, region))
		}

		var routing string
		if network.RoutingConfig != nil {
			routing = network.RoutingConfig.RoutingMode
		}
		var id string
		if network.Id != 0 {
			id = fmt.Sprintf("%d", network.Id)
		}
		out = append(out, VPCNetworkResponse{
			Name:                  network.Name,
			ID:                    id,
			AutoCreateSubnetworks: network.AutoCreateSubnetworks,
			RoutingConfig:         routing,
			Subnets:               subnets,
		})
	}
	return out, nil
}

// parseSubnetURL extracts region and subnet name from a subnetwork self
// link: .../projects/{p}/regions/{region}/subnetworks/{name}.
func parseSubnetURL(url string) (region, name string, ok bool) {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part == "regions" && i+1 < len(parts) {
			region = parts[i+1]
		}
	}
	if region == "" || len(parts) == 0 {
		return "", "", false
	}
	return region, parts[len(parts)-1], true
}

func mapSubnet(s *compute.Subnetwork, region string) SubnetResponse {
	var secondary []SecondaryRange
	for _, r := range s.SecondaryIpRanges {
		secondary = append(secondary, SecondaryRange{
			RangeName:   r.RangeName,
			IPCIDRRange: r.IpCidrRange,
		})
	}
	var id string
	if s.Id != 0 {
		id = fmt.Sprintf("%d", s.Id)
	}
	return SubnetResponse{
		Name:                  s.Name,
		ID:                    id,
		Region:                region,
		Network:               lastSegment(s.Network),
		IPCIDRRange:           s.IpCidrRange,
		GatewayAddress:        s.GatewayAddress,
		SecondaryIPRanges:     secondary,
		PrivateIPGoogleAccess: s.PrivateIpGoogleAccess,
		Purpose:               s.Purpose,
		Role:                  s.Role,
	}
}

// ListLoadBalancers lists forwarding rules for a region, or for every region
// plus the global scope when none is given. Global records carry the region
// tag "global".
func (t *Toolset) ListLoadBalancers(ctx context.Context, projectID, region string) ([]LoadBalancerResponse, error) {
	req, err := request.NewRegional(projectID, region)
	if err != nil {
		return nil, err
	}

	var out []LoadBalancerResponse
	if req.Region != "" {
		rules, err := t.Compute.ListForwardingRules(ctx, req.ProjectID, req.Region)
		if err != nil {
			return nil, providerErr("list load balancers", err)
		}
		for _, rule := range rules {
			out = append(out, mapForwardingRule(rule, req.Region))
		}
		return out, nil
	}

	regions, err := t.Compute.ListRegions(ctx, req.ProjectID)
	if err != nil {
		return nil, providerErr("list load balancers", err)
	}
	for _, r := range regions {
		rules, err := t.Compute.ListForwardingRules(ctx, req.ProjectID, r.Name)
		if err != nil {
			return nil, providerErr("list load balancers", err)
		}
		for _, rule := range rules {
			out = append(out, mapForwardingRule(rule, r.Name))
		}
	}
	globals, err := t.Compute.ListGlobalForwardingRules(ctx, req.ProjectID)
	if err != nil {
		return nil, providerErr("list load balancers", err)
	}
	for _, rule := range globals {
		out = append(out, mapForwardingRule(rule, "global"))
	}
	return out, nil
}

func mapForwardingRule(rule *compute.ForwardingRule, region string) LoadBalancerResponse {
	lbType := LoadBalancerInternal
	if rule.LoadBalancingScheme == "EXTERNAL" {
		lbType = LoadBalancerExternal
	}
	return LoadBalancerResponse{
		Name:                rule.Name,
		Region:              region,
		Type:                lbType,
		IPAddress:           rule.IPAddress,
		IPProtocol:          rule.IPProtocol,
		NetworkTier:         rule.NetworkTier,
		LoadBalancingScheme: rule.LoadBalancingScheme,
		Target:              rule.Target,
		Description:         rule.Description,
	}
}
