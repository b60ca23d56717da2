package tools

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	compute "google.golang.org/api/compute/v1"

	"gcpkit/request"
)

// ListInstances returns instance names for a zone, or for every zone of the
// project when none is given. Zone enumeration is sequential and results are
// concatenated in enumeration order.
func (t *Toolset) ListInstances(ctx context.Context, projectID, zone string) ([]string, error) {
	req, err := request.NewZonal(projectID, zone)
	if err != nil {
		return nil, err
	}

	var instances []*compute.Instance
	if req.Zone != "" {
		instances, err = t.Compute.ListInstances(ctx, req.ProjectID, req.Zone)
		if err != nil {
			return nil, providerErr("list instances", err)
		}
	} else {
		zones, err := t.Compute.ListZones(ctx, req.ProjectID)
		if err != nil {
			return nil, providerErr("list instances", err)
		}
		for _, z := range zones {
			zi, err := t.Compute.ListInstances(ctx, req.ProjectID, z.Name)
			if err != nil {
				return nil, providerErr("list instances", err)
			}
			instances = append(instances, zi...)
		}
	}

	names := make([]string, 0, len(instances))
	for _, inst := range instances {
		names = append(names, inst.Name)
	}
	return names, nil
}

// CreateInstanceParams are the raw create_instance arguments before
// validation.
type CreateInstanceParams struct {
	ProjectID      string
	Zone           string
	InstanceName   string
	MachineType    string
	ImageFamily    string
	DiskSizeGB     int64
	Network        string
	Subnetwork     string
	Tags           []string
	ServiceAccount string
}

// CreateInstance resolves the boot image from its family and inserts the
// instance. An image family of the form "project/family" is looked up in
// that project; a bare family in the target project itself.
func (t *Toolset) CreateInstance(ctx context.Context, p CreateInstanceParams) (*SuccessResponse, error) {
	req, err := request.NewInstanceCreate(p.ProjectID, p.Zone, p.InstanceName, p.MachineType, p.ImageFamily,
		p.DiskSizeGB, p.Network, p.Subnetwork, p.Tags, p.ServiceAccount)
	if err != nil {
		return nil, err
	}

	imageProject, family := req.ProjectID, req.ImageFamily
	if i := strings.Index(family, "/"); i > 0 {
		imageProject, family = family[:i], family[i+1:]
	}
	image, err := t.Compute.GetImageFromFamily(ctx, imageProject, family)
	if err != nil {
		return nil, providerErr("resolve image family "+req.ImageFamily, err)
	}

	nic := &compute.NetworkInterface{
		Network: "global/networks/" + req.Network,
		AccessConfigs: []*compute.AccessConfig{
			{Type: "ONE_TO_ONE_NAT", Name: "External NAT"},
		},
	}
	if req.Subnetwork != "" {
		nic.Subnetwork = fmt.Sprintf("regions/%s/subnetworks/%s", regionOfZone(req.Zone), req.Subnetwork)
	}

	inst := &compute.Instance{
		Name:        req.InstanceName,
		MachineType: fmt.Sprintf("zones/%s/machineTypes/%s", req.Zone, req.MachineType),
		Disks: []*compute.AttachedDisk{{
			Boot:       true,
			AutoDelete: true,
			InitializeParams: &compute.AttachedDiskInitializeParams{
				SourceImage: image.SelfLink,
				DiskSizeGb:  req.DiskSizeGB,
			},
		}},
		NetworkInterfaces: []*compute.NetworkInterface{nic},
	}
	if len(req.Tags) > 0 {
		inst.Tags = &compute.Tags{Items: req.Tags}
	}
	if req.ServiceAccount != "" {
		inst.ServiceAccounts = []*compute.ServiceAccount{{
			Email:  req.ServiceAccount,
			Scopes: []string{"https://www.googleapis.com/auth/cloud-platform"},
		}}
	}

	if err := t.Compute.InsertInstance(ctx, req.ProjectID, req.Zone, inst); err != nil {
		return nil, providerErr("create instance", err)
	}
	return &SuccessResponse{
		Message: fmt.Sprintf("Instance %s creation initiated in %s", req.InstanceName, req.Zone),
		Success: true,
	}, nil
}

// DeleteInstance deletes an instance in a zone.
func (t *Toolset) DeleteInstance(ctx context.Context, projectID, zone, instanceName string) (*SuccessResponse, error) {
	req, err := request.NewInstanceDelete(projectID, zone, instanceName)
	if err != nil {
		return nil, err
	}
	if err := t.Compute.DeleteInstance(ctx, req.ProjectID, req.Zone, req.InstanceName); err != nil {
		return nil, providerErr("delete instance", err)
	}
	return &SuccessResponse{
		Message: fmt.Sprintf("Instance %s deletion initiated", req.InstanceName),
		Success: true,
	}, nil
}

// ListIPAddresses lists reserved addresses plus the addresses currently held
// by instance NICs. Without a region it walks every region sequentially and
// appends global reservations.
func (t *Toolset) ListIPAddresses(ctx context.Context, projectID, region string) ([]IPAddressResponse, error) {
	req, err := request.NewRegional(projectID, region)
	if err != nil {
		return nil, err
	}

	var out []IPAddressResponse
	if req.Region != "" {
		addrs, err := t.Compute.ListAddresses(ctx, req.ProjectID, req.Region)
		if err != nil {
			return nil, providerErr("list IP addresses", err)
		}
		for _, a := range addrs {
			out = append(out, mapAddress(a, req.Region, AddressRegional))
		}
	} else {
		regions, err := t.Compute.ListRegions(ctx, req.ProjectID)
		if err != nil {
			return nil, providerErr("list IP addresses", err)
		}
		for _, r := range regions {
			addrs, err := t.Compute.ListAddresses(ctx, req.ProjectID, r.Name)
			if err != nil {
				return nil, providerErr("list IP addresses", err)
			}
			for _, a := range addrs {
				out = append(out, mapAddress(a, r.Name, AddressRegional))
			}
		}
		globals, err := t.Compute.ListGlobalAddresses(ctx, req.ProjectID)
		if err != nil {
			return nil, providerErr("list IP addresses", err)
		}
		for _, a := range globals {
			out = append(out, mapAddress(a, "", AddressGlobal))
		}
	}

	instanceIPs, err := t.instanceAddresses(ctx, req.ProjectID, req.Region)
	if err != nil {
		return nil, err
	}
	return append(out, instanceIPs...), nil
}

func mapAddress(a *compute.Address, region string, kind AddressType) IPAddressResponse {
	return IPAddressResponse{
		Name:    a.Name,
		Address: a.Address,
		Region:  region,
		Status:  a.Status,
		InUse:   len(a.Users) > 0,
		UsedBy:  a.Users,
		Type:    kind,
		Network: lastSegment(a.Network),
		Subnet:  lastSegment(a.Subnetwork),
	}
}

// instanceAddresses scans instance NICs in one aggregated call and derives
// one record per assigned internal or external address. A non-empty region
// restricts the scan to that region's zones.
func (t *Toolset) instanceAddresses(ctx context.Context, projectID, region string) ([]IPAddressResponse, error) {
	byScope, err := t.Compute.AggregatedListInstances(ctx, projectID)
	if err != nil {
		return nil, providerErr("list IP addresses", err)
	}

	scopes := make([]string, 0, len(byScope))
	for scope := range byScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	var out []IPAddressResponse
	for _, scope := range scopes {
		zone := lastSegment(scope)
		if region != "" && regionOfZone(zone) != region {
			continue
		}
		for _, inst := range byScope[scope] {
			for _, nic := range inst.NetworkInterfaces {
				for _, ac := range nic.AccessConfigs {
					if ac.NatIP == "" {
						continue
					}
					out = append(out, IPAddressResponse{
						Name:    inst.Name + "-external",
						Address: ac.NatIP,
						Region:  regionOfZone(zone),
						Zone:    zone,
						Status:  "IN_USE",
						InUse:   true,
						UsedBy:  []string{"instances/" + inst.Name},
						Type:    AddressExternal,
						Network: lastSegment(nic.Network),
						Subnet:  lastSegment(nic.Subnetwork),
					})
				}
				if nic.NetworkIP != "" {
					out = append(out, IPAddressResponse{
						Name:    inst.Name + "-internal",
						Address: nic.NetworkIP,
						Region:  regionOfZone(zone),
						Zone:    zone,
						Status:  "IN_USE",
						InUse:   true,
						UsedBy:  []string{"instances/" + inst.Name},
						Type:    AddressInternal,
						Network: lastSegment(nic.Network),
						Subnet:  lastSegment(nic.Subnetwork),
					})
				}
			}
		}
	}
	return out, nil
}

// ListPersistentDisks lists disks for a zone, or for every zone when none is
// given. Disk-type detail is best-effort per disk: a failed lookup degrades
// the record instead of failing the list.
func (t *Toolset) ListPersistentDisks(ctx context.Context, projectID, zone string) ([]DiskResponse, error) {
	req, err := request.NewZonal(projectID, zone)
	if err != nil {
		return nil, err
	}

	var out []DiskResponse
	appendZone := func(zoneName string) error {
		disks, err := t.Compute.ListDisks(ctx, req.ProjectID, zoneName)
		if err != nil {
			return providerErr("list persistent disks", err)
		}
		for _, d := range disks {
			out = append(out, t.mapDisk(ctx, req.ProjectID, zoneName, d))
		}
		return nil
	}

	if req.Zone != "" {
		if err := appendZone(req.Zone); err != nil {
			return nil, err
		}
	} else {
		zones, err := t.Compute.ListZones(ctx, req.ProjectID)
		if err != nil {
			return nil, providerErr("list persistent disks", err)
		}
		for _, z := range zones {
			if err := appendZone(z.Name); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (t *Toolset) mapDisk(ctx context.Context, projectID, zone string, d *compute.Disk) DiskResponse {
	typeName := lastSegment(d.Type)
	typeDescription := "UNKNOWN"
	if dt, err := t.Compute.GetDiskType(ctx, projectID, zone, typeName); err != nil {
		log.Printf("Warning: could not resolve disk type %s in zone %s: %v", typeName, zone, err)
	} else {
		typeDescription = dt.Description
	}

	var attachedTo []DiskAttachment
	for _, user := range d.Users {
		if strings.Contains(user, "instances") {
			attachedTo = append(attachedTo, DiskAttachment{Name: lastSegment(user), Status: "ATTACHED"})
		}
	}

	var id string
	if d.Id != 0 {
		id = fmt.Sprintf("%d", d.Id)
	}
	return DiskResponse{
		Name:                   d.Name,
		ID:                     id,
		SizeGB:                 d.SizeGb,
		Status:                 d.Status,
		Type:                   typeName,
		TypeDescription:        typeDescription,
		Zone:                   zone,
		Region:                 regionOfZone(zone),
		InUse:                  len(d.Users) > 0,
		AttachedTo:             attachedTo,
		CreationTimestamp:      d.CreationTimestamp,
		PhysicalBlockSizeBytes: d.PhysicalBlockSizeBytes,
		SourceImage:            lastSegment(d.SourceImage),
		SourceSnapshot:         lastSegment(d.SourceSnapshot),
		SourceDisk:             lastSegment(d.SourceDisk),
		Labels:                 d.Labels,
	}
}
