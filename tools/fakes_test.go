package tools

import (
	"context"
	"time"

	"cloud.google.com/go/billing/apiv1/billingpb"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	compute "google.golang.org/api/compute/v1"
)

// fakeCompute records which calls were made so tests can verify the
// enumeration contracts. Unset fields behave as empty listings.
type fakeCompute struct {
	zones   []*compute.Zone
	regions []*compute.Region

	instancesByZone map[string][]*compute.Instance
	aggregated      map[string][]*compute.Instance
	addressesByReg  map[string][]*compute.Address
	globalAddresses []*compute.Address
	disksByZone     map[string][]*compute.Disk
	diskTypes       map[string]*compute.DiskType
	diskTypeErr     error
	networks        []*compute.Network
	subnets         map[string]*compute.Subnetwork
	subnetErr       error
	rulesByRegion   map[string][]*compute.ForwardingRule
	globalRules     []*compute.ForwardingRule
	image           *compute.Image

	listErr error

	listZonesCalls     int
	listRegionsCalls   int
	listInstancesZones []string
	aggregatedCalls    int
	insertCalls        []*compute.Instance
	deleteCalls        []string
	getDiskTypeCalls   int
	getSubnetworkCalls int
}

func (f *fakeCompute) ListZones(ctx context.Context, project string) ([]*compute.Zone, error) {
	f.listZonesCalls++
	return f.zones, f.listErr
}

func (f *fakeCompute) ListRegions(ctx context.Context, project string) ([]*compute.Region, error) {
	f.listRegionsCalls++
	return f.regions, f.listErr
}

func (f *fakeCompute) ListInstances(ctx context.Context, project, zone string) ([]*compute.Instance, error) {
	f.listInstancesZones = append(f.listInstancesZones, zone)
	return f.instancesByZone[zone], f.listErr
}

func (f *fakeCompute) AggregatedListInstances(ctx context.Context, project string) (map[string][]*compute.Instance, error) {
	f.aggregatedCalls++
	return f.aggregated, f.listErr
}

func (f *fakeCompute) InsertInstance(ctx context.Context, project, zone string, inst *compute.Instance) error {
	f.insertCalls = append(f.insertCalls, inst)
	return nil
}

func (f *fakeCompute) DeleteInstance(ctx context.Context, project, zone, name string) error {
	f.deleteCalls = append(f.deleteCalls, zone+"/"+name)
	return nil
}

func (f *fakeCompute) GetImageFromFamily(ctx context.Context, project, family string) (*compute.Image, error) {
	if f.image == nil {
		return &compute.Image{SelfLink: "projects/" + project + "/global/images/" + family + "-v1"}, nil
	}
	return f.image, nil
}

func (f *fakeCompute) ListAddresses(ctx context.Context, project, region string) ([]*compute.Address, error) {
	return f.addressesByReg[region], f.listErr
}

func (f *fakeCompute) ListGlobalAddresses(ctx context.Context, project string) ([]*compute.Address, error) {
	return f.globalAddresses, f.listErr
}

func (f *fakeCompute) ListDisks(ctx context.Context, project, zone string) ([]*compute.Disk, error) {
	return f.disksByZone[zone], f.listErr
}

func (f *fakeCompute) GetDiskType(ctx context.Context, project, zone, diskType string) (*compute.DiskType, error) {
	f.getDiskTypeCalls++
	if f.diskTypeErr != nil {
		return nil, f.diskTypeErr
	}
	if dt, ok := f.diskTypes[diskType]; ok {
		return dt, nil
	}
	return &compute.DiskType{Name: diskType, Description: diskType}, nil
}

func (f *fakeCompute) ListNetworks(ctx context.Context, project string) ([]*compute.Network, error) {
	return f.networks, f.listErr
}

func (f *fakeCompute) GetSubnetwork(ctx context.Context, project, region, name string) (*compute.Subnetwork, error) {
	f.getSubnetworkCalls++
	if f.subnetErr != nil {
		return nil, f.subnetErr
	}
	return f.subnets[region+"/"+name], nil
}

func (f *fakeCompute) ListForwardingRules(ctx context.Context, project, region string) ([]*compute.ForwardingRule, error) {
	return f.rulesByRegion[region], f.listErr
}

func (f *fakeCompute) ListGlobalForwardingRules(ctx context.Context, project string) ([]*compute.ForwardingRule, error) {
	return f.globalRules, f.listErr
}

type fakeStorage struct {
	buckets []BucketResponse

	listErr   error
	createErr error

	createCalls     []string
	versioningCalls []string
	deleteCalls     []string
}

func (f *fakeStorage) ListBuckets(ctx context.Context, project string) ([]BucketResponse, error) {
	return f.buckets, f.listErr
}

func (f *fakeStorage) CreateBucket(ctx context.Context, project, name, location, storageClass string) error {
	f.createCalls = append(f.createCalls, name)
	return f.createErr
}

func (f *fakeStorage) SetVersioning(ctx context.Context, name string, enabled bool) error {
	f.versioningCalls = append(f.versioningCalls, name)
	return nil
}

func (f *fakeStorage) DeleteBucket(ctx context.Context, name string) error {
	f.deleteCalls = append(f.deleteCalls, name)
	return nil
}

type fakeBilling struct {
	info    *billingpb.ProjectBillingInfo
	infoErr error
	account *billingpb.BillingAccount
	acctErr error

	infoCalls    int
	accountCalls int
}

func (f *fakeBilling) ProjectBillingInfo(ctx context.Context, projectID string) (*billingpb.ProjectBillingInfo, error) {
	f.infoCalls++
	return f.info, f.infoErr
}

func (f *fakeBilling) BillingAccount(ctx context.Context, name string) (*billingpb.BillingAccount, error) {
	f.accountCalls++
	return f.account, f.acctErr
}

type fakeProjects struct {
	projects []*resourcemanagerpb.Project
	err      error
}

func (f *fakeProjects) SearchProjects(ctx context.Context, query string) ([]*resourcemanagerpb.Project, error) {
	return f.projects, f.err
}

// newTestToolset wires the fakes with a fixed clock.
func newTestToolset(c *fakeCompute, s *fakeStorage, b *fakeBilling, p *fakeProjects) *Toolset {
	if c == nil {
		c = &fakeCompute{}
	}
	if s == nil {
		s = &fakeStorage{}
	}
	if b == nil {
		b = &fakeBilling{}
	}
	if p == nil {
		p = &fakeProjects{}
	}
	return &Toolset{
		Compute:  c,
		Storage:  s,
		Billing:  b,
		Projects: p,
		Now:      func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
}
