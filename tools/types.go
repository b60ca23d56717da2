// Package tools implements the callable operations of the facade: each tool
// validates its input, issues one or a short fixed sequence of provider
// calls, and reshapes the raw records into the typed responses below.
package tools

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressType classifies an IP address record.
type AddressType string

const (
	AddressExternal AddressType = "EXTERNAL"
	AddressInternal AddressType = "INTERNAL"
	AddressRegional AddressType = "REGIONAL"
	AddressGlobal   AddressType = "GLOBAL"
)

// LoadBalancerType classifies a forwarding rule by scheme.
type LoadBalancerType string

const (
	LoadBalancerExternal LoadBalancerType = "EXTERNAL"
	LoadBalancerInternal LoadBalancerType = "INTERNAL"
)

// BucketResponse describes a storage bucket.
type BucketResponse struct {
	Name              string     `json:"name" yaml:"name"`
	Location          string     `json:"location" yaml:"location"`
	StorageClass      string     `json:"storage_class" yaml:"storage_class"`
	VersioningEnabled bool       `json:"versioning_enabled" yaml:"versioning_enabled"`
	CreationTime      *time.Time `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
}

// NetworkInterface is one NIC of an instance.
type NetworkInterface struct {
	Name       string `json:"name" yaml:"name"`
	Network    string `json:"network" yaml:"network"`
	Subnetwork string `json:"subnetwork,omitempty" yaml:"subnetwork,omitempty"`
	InternalIP string `json:"internal_ip,omitempty" yaml:"internal_ip,omitempty"`
	ExternalIP string `json:"external_ip,omitempty" yaml:"external_ip,omitempty"`
}

// AttachedDisk is one disk of an instance.
type AttachedDisk struct {
	DeviceName string `json:"device_name" yaml:"device_name"`
	Source     string `json:"source,omitempty" yaml:"source,omitempty"`
	Boot       bool   `json:"boot" yaml:"boot"`
}

// InstanceResponse describes a compute instance.
type InstanceResponse struct {
	Name              string             `json:"name" yaml:"name"`
	ID                string             `json:"id,omitempty" yaml:"id,omitempty"`
	Status            string             `json:"status" yaml:"status"`
	MachineType       string             `json:"machine_type" yaml:"machine_type"`
	Zone              string             `json:"zone" yaml:"zone"`
	Region            string             `json:"region" yaml:"region"`
	CreationTimestamp string             `json:"creation_timestamp,omitempty" yaml:"creation_timestamp,omitempty"`
	NetworkInterfaces []NetworkInterface `json:"network_interfaces,omitempty" yaml:"network_interfaces,omitempty"`
	Disks             []AttachedDisk     `json:"disks,omitempty" yaml:"disks,omitempty"`
	Tags              []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// IPAddressResponse describes one IP address, reserved or instance-derived.
type IPAddressResponse struct {
	Name    string      `json:"name" yaml:"name"`
	Address string      `json:"address" yaml:"address"`
	Region  string      `json:"region,omitempty" yaml:"region,omitempty"`
	Zone    string      `json:"zone,omitempty" yaml:"zone,omitempty"`
	Status  string      `json:"status" yaml:"status"`
	InUse   bool        `json:"in_use" yaml:"in_use"`
	UsedBy  []string    `json:"used_by,omitempty" yaml:"used_by,omitempty"`
	Type    AddressType `json:"type" yaml:"type"`
	Network string      `json:"network,omitempty" yaml:"network,omitempty"`
	Subnet  string      `json:"subnet,omitempty" yaml:"subnet,omitempty"`
}

// DiskAttachment names an instance a disk is attached to.
type DiskAttachment struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
}

// DiskResponse describes a persistent disk.
type DiskResponse struct {
	Name                   string            `json:"name" yaml:"name"`
	ID                     string            `json:"id,omitempty" yaml:"id,omitempty"`
	SizeGB                 int64             `json:"size_gb" yaml:"size_gb"`
	Status                 string            `json:"status" yaml:"status"`
	Type                   string            `json:"type" yaml:"type"`
	TypeDescription        string            `json:"type_description,omitempty" yaml:"type_description,omitempty"`
	Zone                   string            `json:"zone" yaml:"zone"`
	Region                 string            `json:"region" yaml:"region"`
	InUse                  bool              `json:"in_use" yaml:"in_use"`
	AttachedTo             []DiskAttachment  `json:"attached_to,omitempty" yaml:"attached_to,omitempty"`
	CreationTimestamp      string            `json:"creation_timestamp,omitempty" yaml:"creation_timestamp,omitempty"`
	PhysicalBlockSizeBytes int64             `json:"physical_block_size_bytes,omitempty" yaml:"physical_block_size_bytes,omitempty"`
	SourceImage            string            `json:"source_image,omitempty" yaml:"source_image,omitempty"`
	SourceSnapshot         string            `json:"source_snapshot,omitempty" yaml:"source_snapshot,omitempty"`
	SourceDisk             string            `json:"source_disk,omitempty" yaml:"source_disk,omitempty"`
	Labels                 map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// SecondaryRange is one secondary IP range of a subnet.
type SecondaryRange struct {
	RangeName   string `json:"range_name" yaml:"range_name"`
	IPCIDRRange string `json:"ip_cidr_range" yaml:"ip_cidr_range"`
}

// SubnetResponse describes a subnet of a VPC network.
type SubnetResponse struct {
	Name                  string           `json:"name" yaml:"name"`
	ID                    string           `json:"id,omitempty" yaml:"id,omitempty"`
	Region                string           `json:"region" yaml:"region"`
	Network               string           `json:"network" yaml:"network"`
	IPCIDRRange           string           `json:"ip_cidr_range" yaml:"ip_cidr_range"`
	GatewayAddress        string           `json:"gateway_address,omitempty" yaml:"gateway_address,omitempty"`
	SecondaryIPRanges     []SecondaryRange `json:"secondary_ip_ranges,omitempty" yaml:"secondary_ip_ranges,omitempty"`
	PrivateIPGoogleAccess bool             `json:"private_ip_google_access" yaml:"private_ip_google_access"`
	Purpose               string           `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Role                  string           `json:"role,omitempty" yaml:"role,omitempty"`
}

// VPCNetworkResponse describes a VPC network and its subnets.
type VPCNetworkResponse struct {
	Name                  string           `json:"name" yaml:"name"`
	ID                    string           `json:"id,omitempty" yaml:"id,omitempty"`
	AutoCreateSubnetworks bool             `json:"auto_create_subnetworks" yaml:"auto_create_subnetworks"`
	RoutingConfig         string           `json:"routing_config,omitempty" yaml:"routing_config,omitempty"`
	Subnets               []SubnetResponse `json:"subnets" yaml:"subnets"`
}

// LoadBalancerResponse describes a forwarding rule.
type LoadBalancerResponse struct {
	Name                string           `json:"name" yaml:"name"`
	Region              string           `json:"region" yaml:"region"`
	Type                LoadBalancerType `json:"type" yaml:"type"`
	IPAddress           string           `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	IPProtocol          string           `json:"ip_protocol,omitempty" yaml:"ip_protocol,omitempty"`
	NetworkTier         string           `json:"network_tier,omitempty" yaml:"network_tier,omitempty"`
	LoadBalancingScheme string           `json:"load_balancing_scheme" yaml:"load_balancing_scheme"`
	Target              string           `json:"target,omitempty" yaml:"target,omitempty"`
	Description         string           `json:"description,omitempty" yaml:"description,omitempty"`
}

// CostAmount is a monetary amount with its currency.
type CostAmount struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
}

// TimeRange is a half-open billing window in RFC 3339 form.
type TimeRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// BillingCostResponse carries the billing lookup result. Success is part of
// the record itself: a project without billing enabled is a structured
// failure, not an error.
type BillingCostResponse struct {
	Success          bool                  `json:"success" yaml:"success"`
	ProjectID        string                `json:"project_id" yaml:"project_id"`
	BillingAccountID string                `json:"billing_account_id,omitempty" yaml:"billing_account_id,omitempty"`
	TimeRange        *TimeRange            `json:"time_range,omitempty" yaml:"time_range,omitempty"`
	TotalCost        *CostAmount           `json:"total_cost,omitempty" yaml:"total_cost,omitempty"`
	CostsByService   map[string]CostAmount `json:"costs_by_service,omitempty" yaml:"costs_by_service,omitempty"`
	Error            string                `json:"error,omitempty" yaml:"error,omitempty"`
}

// MetricsResponse is the (currently empty-data) monitoring payload.
type MetricsResponse struct {
	Message     string         `json:"message" yaml:"message"`
	ProjectID   string         `json:"project_id" yaml:"project_id"`
	MetricType  string         `json:"metric_type" yaml:"metric_type"`
	Interval    string         `json:"interval" yaml:"interval"`
	Aggregation string         `json:"aggregation" yaml:"aggregation"`
	Data        map[string]any `json:"data" yaml:"data"`
}

// ProjectResponse describes an accessible project.
type ProjectResponse struct {
	ProjectID string `json:"project_id" yaml:"project_id"`
	Name      string `json:"name" yaml:"name"`
	State     string `json:"state" yaml:"state"`
}

// SuccessResponse is the envelope for mutating operations.
type SuccessResponse struct {
	Message string `json:"message" yaml:"message"`
	Success bool   `json:"success" yaml:"success"`
}

// ErrorResponse is the terminal error envelope for every operation.
type ErrorResponse struct {
	Error   string         `json:"error" yaml:"error"`
	Success bool           `json:"success" yaml:"success"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}
