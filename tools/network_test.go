package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compute "google.golang.org/api/compute/v1"
)

func TestListVPCNetworks(t *testing.T) {
	c := &fakeCompute{
		networks: []*compute.Network{{
			Name:                  "prod-vpc",
			Id:                    12345,
			AutoCreateSubnetworks: false,
			RoutingConfig:         &compute.NetworkRoutingConfig{RoutingMode: "REGIONAL"},
			Subnetworks: []string{
				"https://compute.googleapis.com/compute/v1/projects/my-project/regions/us-central1/subnetworks/prod-subnet",
			},
		}},
		subnets: map[string]*compute.Subnetwork{
			"us-central1/prod-subnet": {
				Name:                  "prod-subnet",
				Network:               "projects/my-project/global/networks/prod-vpc",
				IpCidrRange:           "10.0.0.0/20",
				GatewayAddress:        "10.0.0.1",
				PrivateIpGoogleAccess: true,
				SecondaryIpRanges: []*compute.SubnetworkSecondaryRange{
					{RangeName: "pods", IpCidrRange: "10.4.0.0/14"},
				},
			},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	networks, err := ts.ListVPCNetworks(context.Background(), "my-project")
	require.NoError(t, err)
	require.Len(t, networks, 1)
	n := networks[0]
	assert.Equal(t, "prod-vpc", n.Name)
	assert.Equal(t, "12345", n.ID)
	assert.Equal(t, "REGIONAL", n.RoutingConfig)
	require.Len(t, n.Subnets, 1)
	s := n.Subnets[0]
	assert.Equal(t, "prod-subnet", s.Name)
	assert.Equal(t, "us-central1", s.Region)
	assert.Equal(t, "prod-vpc", s.Network)
	assert.Equal(t, "10.0.0.0/20", s.IPCIDRRange)
	assert.True(t, s.PrivateIPGoogleAccess)
	require.Len(t, s.SecondaryIPRanges, 1)
	assert.Equal(t, "pods", s.SecondaryIPRanges[0].RangeName)
}

func TestListVPCNetworksSubnetLookupDegrades(t *testing.T) {
	c := &fakeCompute{
		networks: []*compute.Network{{
			Name: "prod-vpc",
			Subnetworks: []string{
				"projects/my-project/regions/us-central1/subnetworks/broken-subnet",
			},
		}},
		subnetErr: errors.New("permission denied"),
	}
	ts := newTestToolset(c, nil, nil, nil)

	networks, err := ts.ListVPCNetworks(context.Background(), "my-project")
	require.NoError(t, err, "a failed subnet lookup must not fail the listing")
	require.Len(t, networks, 1)
	require.Len(t, networks[0].Subnets, 1)
	s := networks[0].Subnets[0]
	assert.Equal(t, "broken-subnet", s.Name)
	assert.Equal(t, "us-central1", s.Region)
	assert.Equal(t, "unknown", s.IPCIDRRange)
}

func TestParseSubnetURL(t *testing.T) {
	region, name, ok := parseSubnetURL("projects/p/regions/europe-west1/subnetworks/my-subnet")
	require.True(t, ok)
	assert.Equal(t, "europe-west1", region)
	assert.Equal(t, "my-subnet", name)

	_, _, ok = parseSubnetURL("projects/p/global/networks/default")
	assert.False(t, ok)
}

func TestListLoadBalancersAllRegions(t *testing.T) {
	c := &fakeCompute{
		regions: []*compute.Region{{Name: "us-central1"}, {Name: "europe-west1"}},
		rulesByRegion: map[string][]*compute.ForwardingRule{
			"us-central1": {{Name: "web-lb", LoadBalancingScheme: "EXTERNAL", IPAddress: "34.1.2.3", IPProtocol: "TCP"}},
		},
		globalRules: []*compute.ForwardingRule{
			{Name: "global-lb", LoadBalancingScheme: "EXTERNAL_MANAGED", IPAddress: "34.9.9.9"},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	lbs, err := ts.ListLoadBalancers(context.Background(), "my-project", "")
	require.NoError(t, err)
	require.Len(t, lbs, 2)

	assert.Equal(t, "web-lb", lbs[0].Name)
	assert.Equal(t, "us-central1", lbs[0].Region)
	assert.Equal(t, LoadBalancerExternal, lbs[0].Type)

	assert.Equal(t, "global-lb", lbs[1].Name)
	assert.Equal(t, "global", lbs[1].Region)
	// only the literal EXTERNAL scheme maps to external
	assert.Equal(t, LoadBalancerInternal, lbs[1].Type)
}

func TestListLoadBalancersPinnedRegion(t *testing.T) {
	c := &fakeCompute{
		rulesByRegion: map[string][]*compute.ForwardingRule{
			"us-central1": {{Name: "internal-lb", LoadBalancingScheme: "INTERNAL"}},
		},
		globalRules: []*compute.ForwardingRule{{Name: "global-lb"}},
	}
	ts := newTestToolset(c, nil, nil, nil)

	lbs, err := ts.ListLoadBalancers(context.Background(), "my-project", "us-central1")
	require.NoError(t, err)
	assert.Zero(t, c.listRegionsCalls)
	require.Len(t, lbs, 1, "a pinned region must not include global rules")
	assert.Equal(t, "internal-lb", lbs[0].Name)
	assert.Equal(t, LoadBalancerInternal, lbs[0].Type)
}
