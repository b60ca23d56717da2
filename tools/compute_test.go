package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compute "google.golang.org/api/compute/v1"
)

func TestListInstancesSingleZone(t *testing.T) {
	c := &fakeCompute{instancesByZone: map[string][]*compute.Instance{
		"us-central1-a": {{Name: "web-1"}, {Name: "web-2"}},
	}}
	ts := newTestToolset(c, nil, nil, nil)

	names, err := ts.ListInstances(context.Background(), "my-project", "us-central1-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"web-1", "web-2"}, names)
	assert.Zero(t, c.listZonesCalls, "a pinned zone must not enumerate zones")
	assert.Equal(t, []string{"us-central1-a"}, c.listInstancesZones)
}

func TestListInstancesAllZones(t *testing.T) {
	c := &fakeCompute{
		zones: []*compute.Zone{{Name: "us-central1-a"}, {Name: "us-central1-b"}, {Name: "europe-west1-b"}},
		instancesByZone: map[string][]*compute.Instance{
			"us-central1-a":  {{Name: "web-1"}},
			"europe-west1-b": {{Name: "db-1"}},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	names, err := ts.ListInstances(context.Background(), "my-project", "")
	require.NoError(t, err)
	// one zone enumeration, one listing per zone, results concatenated in
	// zone order
	assert.Equal(t, 1, c.listZonesCalls)
	assert.Equal(t, []string{"us-central1-a", "us-central1-b", "europe-west1-b"}, c.listInstancesZones)
	assert.Equal(t, []string{"web-1", "db-1"}, names)
}

func TestCreateInstance(t *testing.T) {
	c := &fakeCompute{}
	ts := newTestToolset(c, nil, nil, nil)

	resp, err := ts.CreateInstance(context.Background(), CreateInstanceParams{
		ProjectID:    "my-project",
		Zone:         "us-central1-a",
		InstanceName: "web-1",
		MachineType:  "e2-medium",
		ImageFamily:  "debian-cloud/debian-12",
		Tags:         []string{"http-server"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Instance web-1 creation initiated in us-central1-a", resp.Message)

	require.Len(t, c.insertCalls, 1)
	inst := c.insertCalls[0]
	assert.Equal(t, "zones/us-central1-a/machineTypes/e2-medium", inst.MachineType)
	require.Len(t, inst.Disks, 1)
	assert.True(t, inst.Disks[0].Boot)
	assert.True(t, inst.Disks[0].AutoDelete)
	assert.Equal(t, int64(10), inst.Disks[0].InitializeParams.DiskSizeGb)
	assert.Contains(t, inst.Disks[0].InitializeParams.SourceImage, "debian-cloud")
	require.Len(t, inst.NetworkInterfaces, 1)
	assert.Equal(t, "global/networks/default", inst.NetworkInterfaces[0].Network)
	require.Len(t, inst.NetworkInterfaces[0].AccessConfigs, 1)
	assert.Equal(t, "ONE_TO_ONE_NAT", inst.NetworkInterfaces[0].AccessConfigs[0].Type)
	assert.Equal(t, []string{"http-server"}, inst.Tags.Items)
}

func TestCreateInstanceValidation(t *testing.T) {
	c := &fakeCompute{}
	ts := newTestToolset(c, nil, nil, nil)

	_, err := ts.CreateInstance(context.Background(), CreateInstanceParams{
		ProjectID:    "my-project",
		Zone:         "us-central1-a",
		InstanceName: "web-1",
		MachineType:  "e2-medium",
		ImageFamily:  "debian-12",
		DiskSizeGB:   5,
	})
	require.Error(t, err)
	assert.Empty(t, c.insertCalls)
}

func TestDeleteInstance(t *testing.T) {
	c := &fakeCompute{}
	ts := newTestToolset(c, nil, nil, nil)

	resp, err := ts.DeleteInstance(context.Background(), "my-project", "us-central1-a", "web-1")
	require.NoError(t, err)
	assert.Equal(t, "Instance web-1 deletion initiated", resp.Message)
	assert.Equal(t, []string{"us-central1-a/web-1"}, c.deleteCalls)
}

func TestListIPAddressesAllRegions(t *testing.T) {
	c := &fakeCompute{
		regions: []*compute.Region{{Name: "us-central1"}},
		addressesByReg: map[string][]*compute.Address{
			"us-central1": {{Name: "reserved-1", Address: "34.1.2.3", Status: "RESERVED"}},
		},
		globalAddresses: []*compute.Address{{Name: "global-1", Address: "34.9.9.9", Status: "IN_USE", Users: []string{"rules/fr-1"}}},
		aggregated: map[string][]*compute.Instance{
			"zones/us-central1-a": {{
				Name: "web-1",
				NetworkInterfaces: []*compute.NetworkInterface{{
					Network:   "projects/my-project/global/networks/default",
					NetworkIP: "10.0.0.2",
					AccessConfigs: []*compute.AccessConfig{{NatIP: "34.5.6.7"}},
				}},
			}},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	addrs, err := ts.ListIPAddresses(context.Background(), "my-project", "")
	require.NoError(t, err)
	require.Len(t, addrs, 4)

	assert.Equal(t, AddressRegional, addrs[0].Type)
	assert.Equal(t, "us-central1", addrs[0].Region)
	assert.False(t, addrs[0].InUse)

	assert.Equal(t, AddressGlobal, addrs[1].Type)
	assert.True(t, addrs[1].InUse)

	assert.Equal(t, "web-1-external", addrs[2].Name)
	assert.Equal(t, AddressExternal, addrs[2].Type)
	assert.Equal(t, "34.5.6.7", addrs[2].Address)
	assert.Equal(t, "IN_USE", addrs[2].Status)
	assert.Equal(t, []string{"instances/web-1"}, addrs[2].UsedBy)

	assert.Equal(t, "web-1-internal", addrs[3].Name)
	assert.Equal(t, AddressInternal, addrs[3].Type)
	assert.Equal(t, "10.0.0.2", addrs[3].Address)
	assert.Equal(t, "default", addrs[3].Network)
}

func TestListIPAddressesRegionFilter(t *testing.T) {
	c := &fakeCompute{
		addressesByReg: map[string][]*compute.Address{
			"us-central1": {{Name: "reserved-1", Address: "34.1.2.3"}},
		},
		aggregated: map[string][]*compute.Instance{
			"zones/us-central1-a": {{
				Name:              "keep-me",
				NetworkInterfaces: []*compute.NetworkInterface{{NetworkIP: "10.0.0.2"}},
			}},
			"zones/europe-west1-b": {{
				Name:              "drop-me",
				NetworkInterfaces: []*compute.NetworkInterface{{NetworkIP: "10.1.0.2"}},
			}},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	addrs, err := ts.ListIPAddresses(context.Background(), "my-project", "us-central1")
	require.NoError(t, err)
	assert.Zero(t, c.listRegionsCalls)
	require.Len(t, addrs, 2)
	assert.Equal(t, "reserved-1", addrs[0].Name)
	assert.Equal(t, "keep-me-internal", addrs[1].Name)
}

func TestListPersistentDisks(t *testing.T) {
	c := &fakeCompute{
		disksByZone: map[string][]*compute.Disk{
			"us-central1-a": {{
				Name:   "data-disk",
				SizeGb: 100,
				Status: "READY",
				Type:   "projects/my-project/zones/us-central1-a/diskTypes/pd-ssd",
				Users:  []string{"projects/my-project/zones/us-central1-a/instances/web-1"},
			}},
		},
		diskTypes: map[string]*compute.DiskType{
			"pd-ssd": {Name: "pd-ssd", Description: "SSD Persistent Disk"},
		},
	}
	ts := newTestToolset(c, nil, nil, nil)

	disks, err := ts.ListPersistentDisks(context.Background(), "my-project", "us-central1-a")
	require.NoError(t, err)
	require.Len(t, disks, 1)
	d := disks[0]
	assert.Equal(t, "pd-ssd", d.Type)
	assert.Equal(t, "SSD Persistent Disk", d.TypeDescription)
	assert.Equal(t, "us-central1", d.Region)
	assert.True(t, d.InUse)
	require.Len(t, d.AttachedTo, 1)
	assert.Equal(t, "web-1", d.AttachedTo[0].Name)
	assert.Equal(t, "ATTACHED", d.AttachedTo[0].Status)
}

func TestListPersistentDisksTypeLookupDegrades(t *testing.T) {
	c := &fakeCompute{
		disksByZone: map[string][]*compute.Disk{
			"us-central1-a": {{Name: "data-disk", SizeGb: 50, Type: "zones/us-central1-a/diskTypes/pd-standard"}},
		},
		diskTypeErr: errors.New("permission denied"),
	}
	ts := newTestToolset(c, nil, nil, nil)

	disks, err := ts.ListPersistentDisks(context.Background(), "my-project", "us-central1-a")
	require.NoError(t, err, "a failed type lookup must not fail the listing")
	require.Len(t, disks, 1)
	assert.Equal(t, "pd-standard", disks[0].Type)
	assert.Equal(t, "UNKNOWN", disks[0].TypeDescription)
}
