package tools

import (
	"context"

	billing "cloud.google.com/go/billing/apiv1"
	"cloud.google.com/go/billing/apiv1/billingpb"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"cloud.google.com/go/storage"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/iterator"
)

// gcpCompute adapts *compute.Service to ComputeAPI.
type gcpCompute struct {
	svc *compute.Service
}

func (g *gcpCompute) ListZones(ctx context.Context, project string) ([]*compute.Zone, error) {
	var zones []*compute.Zone
	err := g.svc.Zones.List(project).Pages(ctx, func(page *compute.ZoneList) error {
		zones = append(zones, page.Items...)
		return nil
	})
	return zones, err
}

func (g *gcpCompute) ListRegions(ctx context.Context, project string) ([]*compute.Region, error) {
	var regions []*compute.Region
	err := g.svc.Regions.List(project).Pages(ctx, func(page *compute.RegionList) error {
		regions = append(regions, page.Items...)
		return nil
	})
	return regions, err
}

func (g *gcpCompute) ListInstances(ctx context.Context, project, zone string) ([]*compute.Instance, error) {
	var instances []*compute.Instance
	err := g.svc.Instances.List(project, zone).Pages(ctx, func(page *compute.InstanceList) error {
		instances = append(instances, page.Items...)
		return nil
	})
	return instances, err
}

func (g *gcpCompute) AggregatedListInstances(ctx context.Context, project string) (map[string][]*compute.Instance, error) {
	byZone := make(map[string][]*compute.Instance)
	err := g.svc.Instances.AggregatedList(project).Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for scope, item := range page.Items {
			if len(item.Instances) > 0 {
				byZone[scope] = append(byZone[scope], item.Instances...)
			}
		}
		return nil
	})
	return byZone, err
}

func (g *gcpCompute) InsertInstance(ctx context.Context, project, zone string, inst *compute.Instance) error {
	_, err := g.svc.Instances.Insert(project, zone, inst).Context(ctx).Do()
	return err
}

func (g *gcpCompute) DeleteInstance(ctx context.Context, project, zone, name string) error {
	_, err := g.svc.Instances.Delete(project, zone, name).Context(ctx).Do()
	return err
}

func (g *gcpCompute) GetImageFromFamily(ctx context.Context, project, family string) (*compute.Image, error) {
	return g.svc.Images.GetFromFamily(project, family).Context(ctx).Do()
}

func (g *gcpCompute) ListAddresses(ctx context.Context, project, region string) ([]*compute.Address, error) {
	var addresses []*compute.Address
	err := g.svc.Addresses.List(project, region).Pages(ctx, func(page *compute.AddressList) error {
		addresses = append(addresses, page.Items...)
		return nil
	})
	return addresses, err
}

func (g *gcpCompute) ListGlobalAddresses(ctx context.Context, project string) ([]*compute.Address, error) {
	var addresses []*compute.Address
	err := g.svc.GlobalAddresses.List(project).Pages(ctx, func(page *compute.AddressList) error {
		addresses = append(addresses, page.Items...)
		return nil
	})
	return addresses, err
}

func (g *gcpCompute) ListDisks(ctx context.Context, project, zone string) ([]*compute.Disk, error) {
	var disks []*compute.Disk
	err := g.svc.Disks.List(project, zone).Pages(ctx, func(page *compute.DiskList) error {
		disks = append(disks, page.Items...)
		return nil
	})
	return disks, err
}

func (g *gcpCompute) GetDiskType(ctx context.Context, project, zone, diskType string) (*compute.DiskType, error) {
	return g.svc.DiskTypes.Get(project, zone, diskType).Context(ctx).Do()
}

func (g *gcpCompute) ListNetworks(ctx context.Context, project string) ([]*compute.Network, error) {
	var networks []*compute.Network
	err := g.svc.Networks.List(project).Pages(ctx, func(page *compute.NetworkList) error {
		networks = append(networks, page.Items...)
		return nil
	})
	return networks, err
}

func (g *gcpCompute) GetSubnetwork(ctx context.Context, project, region, name string) (*compute.Subnetwork, error) {
	return g.svc.Subnetworks.Get(project, region, name).Context(ctx).Do()
}

func (g *gcpCompute) ListForwardingRules(ctx context.Context, project, region string) ([]*compute.ForwardingRule, error) {
	var rules []*compute.ForwardingRule
	err := g.svc.ForwardingRules.List(project, region).Pages(ctx, func(page *compute.ForwardingRuleList) error {
		rules = append(rules, page.Items...)
		return nil
	})
	return rules, err
}

func (g *gcpCompute) ListGlobalForwardingRules(ctx context.Context, project string) ([]*compute.ForwardingRule, error) {
	var rules []*compute.ForwardingRule
	err := g.svc.GlobalForwardingRules.List(project).Pages(ctx, func(page *compute.ForwardingRuleList) error {
		rules = append(rules, page.Items...)
		return nil
	})
	return rules, err
}

// gcpStorage adapts *storage.Client to StorageAPI.
type gcpStorage struct {
	client *storage.Client
}

func (g *gcpStorage) ListBuckets(ctx context.Context, project string) ([]BucketResponse, error) {
	it := g.client.Buckets(ctx, project)
	var buckets []BucketResponse
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		created := attrs.Created
		buckets = append(buckets, BucketResponse{
			Name:              attrs.Name,
			Location:          attrs.Location,
			StorageClass:      attrs.StorageClass,
			VersioningEnabled: attrs.VersioningEnabled,
			CreationTime:      &created,
		})
	}
	return buckets, nil
}

func (g *gcpStorage) CreateBucket(ctx context.Context, project, name, location, storageClass string) error {
	return g.client.Bucket(name).Create(ctx, project, &storage.BucketAttrs{
		Location:     location,
		StorageClass: storageClass,
	})
}

func (g *gcpStorage) SetVersioning(ctx context.Context, name string, enabled bool) error {
	_, err := g.client.Bucket(name).Update(ctx, storage.BucketAttrsToUpdate{
		VersioningEnabled: enabled,
	})
	return err
}

func (g *gcpStorage) DeleteBucket(ctx context.Context, name string) error {
	return g.client.Bucket(name).Delete(ctx)
}

// gcpBilling adapts *billing.CloudBillingClient to BillingAPI.
type gcpBilling struct {
	client *billing.CloudBillingClient
}

func (g *gcpBilling) ProjectBillingInfo(ctx context.Context, projectID string) (*billingpb.ProjectBillingInfo, error) {
	return g.client.GetProjectBillingInfo(ctx, &billingpb.GetProjectBillingInfoRequest{
		Name: "projects/" + projectID,
	})
}

func (g *gcpBilling) BillingAccount(ctx context.Context, name string) (*billingpb.BillingAccount, error) {
	return g.client.GetBillingAccount(ctx, &billingpb.GetBillingAccountRequest{Name: name})
}

// gcpProjects adapts *resourcemanager.ProjectsClient to ProjectsAPI.
type gcpProjects struct {
	client *resourcemanager.ProjectsClient
}

func (g *gcpProjects) SearchProjects(ctx context.Context, query string) ([]*resourcemanagerpb.Project, error) {
	it := g.client.SearchProjects(ctx, &resourcemanagerpb.SearchProjectsRequest{Query: query})
	var projects []*resourcemanagerpb.Project
	for {
		p, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
