package tools

import (
	"context"

	"cloud.google.com/go/billing/apiv1/billingpb"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	compute "google.golang.org/api/compute/v1"
)

// ComputeAPI is the slice of the Compute Engine surface the handlers touch.
// The production implementation delegates pagination to the SDK; fakes in
// tests count calls to verify the enumeration contracts.
type ComputeAPI interface {
	ListZones(ctx context.Context, project string) ([]*compute.Zone, error)
	ListRegions(ctx context.Context, project string) ([]*compute.Region, error)

	ListInstances(ctx context.Context, project, zone string) ([]*compute.Instance, error)
	AggregatedListInstances(ctx context.Context, project string) (map[string][]*compute.Instance, error)
	InsertInstance(ctx context.Context, project, zone string, inst *compute.Instance) error
	DeleteInstance(ctx context.Context, project, zone, name string) error
	GetImageFromFamily(ctx context.Context, project, family string) (*compute.Image, error)

	ListAddresses(ctx context.Context, project, region string) ([]*compute.Address, error)
	ListGlobalAddresses(ctx context.Context, project string) ([]*compute.Address, error)

	ListDisks(ctx context.Context, project, zone string) ([]*compute.Disk, error)
	GetDiskType(ctx context.Context, project, zone, diskType string) (*compute.DiskType, error)

	ListNetworks(ctx context.Context, project string) ([]*compute.Network, error)
	GetSubnetwork(ctx context.Context, project, region, name string) (*compute.Subnetwork, error)

	ListForwardingRules(ctx context.Context, project, region string) ([]*compute.ForwardingRule, error)
	ListGlobalForwardingRules(ctx context.Context, project string) ([]*compute.ForwardingRule, error)
}

// StorageAPI covers the bucket operations.
type StorageAPI interface {
	ListBuckets(ctx context.Context, project string) ([]BucketResponse, error)
	CreateBucket(ctx context.Context, project, name, location, storageClass string) error
	SetVersioning(ctx context.Context, name string, enabled bool) error
	DeleteBucket(ctx context.Context, name string) error
}

// BillingAPI covers the billing account lookups.
type BillingAPI interface {
	ProjectBillingInfo(ctx context.Context, projectID string) (*billingpb.ProjectBillingInfo, error)
	BillingAccount(ctx context.Context, name string) (*billingpb.BillingAccount, error)
}

// ProjectsAPI lists projects the credentials can see.
type ProjectsAPI interface {
	SearchProjects(ctx context.Context, query string) ([]*resourcemanagerpb.Project, error)
}
