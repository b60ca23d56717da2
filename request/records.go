package request

import "time"

// Project is the base of every request.
type Project struct {
	ProjectID string
}

func NewProject(projectID string) (Project, error) {
	if err := ValidProjectID(projectID); err != nil {
		return Project{}, err
	}
	return Project{ProjectID: projectID}, nil
}

// Zonal pins an optional zone.
type Zonal struct {
	Project
	Zone string
}

func NewZonal(projectID, zone string) (Zonal, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return Zonal{}, err
	}
	return Zonal{Project: p, Zone: zone}, nil
}

// Regional pins an optional region.
type Regional struct {
	Project
	Region string
}

func NewRegional(projectID, region string) (Regional, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return Regional{}, err
	}
	return Regional{Project: p, Region: region}, nil
}

var storageClasses = map[string]bool{
	"STANDARD": true,
	"NEARLINE": true,
	"COLDLINE": true,
	"ARCHIVE":  true,
}

// BucketCreate is a normalized create_bucket request.
type BucketCreate struct {
	Project
	BucketName   string
	Location     string
	StorageClass string
	Versioning   bool
}

func NewBucketCreate(projectID, bucketName, location, storageClass string, versioning bool) (BucketCreate, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return BucketCreate{}, err
	}
	if err := ValidBucketName(bucketName); err != nil {
		return BucketCreate{}, err
	}
	if location == "" {
		return BucketCreate{}, &ValidationError{Field: "location", Reason: "is required"}
	}
	if storageClass == "" {
		storageClass = "STANDARD"
	}
	if !storageClasses[storageClass] {
		return BucketCreate{}, &ValidationError{
			Field:  "storage_class",
			Reason: "must be one of STANDARD, NEARLINE, COLDLINE, ARCHIVE",
		}
	}
	return BucketCreate{
		Project:      p,
		BucketName:   bucketName,
		Location:     location,
		StorageClass: storageClass,
		Versioning:   versioning,
	}, nil
}

// BucketDelete is a normalized delete_bucket request.
type BucketDelete struct {
	Project
	BucketName string
}

func NewBucketDelete(projectID, bucketName string) (BucketDelete, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return BucketDelete{}, err
	}
	if err := ValidBucketName(bucketName); err != nil {
		return BucketDelete{}, err
	}
	return BucketDelete{Project: p, BucketName: bucketName}, nil
}

// InstanceCreate is a normalized create_instance request. DiskSizeGB of zero
// defaults to 10 and an empty network defaults to "default" before
// validation.
type InstanceCreate struct {
	Project
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

func NewInstanceCreate(projectID, zone, instanceName, machineType, imageFamily string, diskSizeGB int64, network, subnetwork string, tags []string, serviceAccount string) (InstanceCreate, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return InstanceCreate{}, err
	}
	if zone == "" {
		return InstanceCreate{}, &ValidationError{Field: "zone", Reason: "is required"}
	}
	if err := ValidInstanceName(instanceName); err != nil {
		return InstanceCreate{}, err
	}
	if machineType == "" {
		return InstanceCreate{}, &ValidationError{Field: "machine_type", Reason: "is required"}
	}
	if imageFamily == "" {
		return InstanceCreate{}, &ValidationError{Field: "image_family", Reason: "is required"}
	}
	if diskSizeGB == 0 {
		diskSizeGB = MinDiskSizeGB
	}
	if err := ValidDiskSizeGB(diskSizeGB); err != nil {
		return InstanceCreate{}, err
	}
	if network == "" {
		network = "default"
	}
	return InstanceCreate{
		Project:        p,
		Zone:           zone,
		InstanceName:   instanceName,
		MachineType:    machineType,
		ImageFamily:    imageFamily,
		DiskSizeGB:     diskSizeGB,
		Network:        network,
		Subnetwork:     subnetwork,
		Tags:           tags,
		ServiceAccount: serviceAccount,
	}, nil
}

// InstanceDelete is a normalized delete_instance request.
type InstanceDelete struct {
	Project
	Zone         string
	InstanceName string
}

func NewInstanceDelete(projectID, zone, instanceName string) (InstanceDelete, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return InstanceDelete{}, err
	}
	if zone == "" {
		return InstanceDelete{}, &ValidationError{Field: "zone", Reason: "is required"}
	}
	if err := ValidInstanceName(instanceName); err != nil {
		return InstanceDelete{}, err
	}
	return InstanceDelete{Project: p, Zone: zone, InstanceName: instanceName}, nil
}

// BillingCost is a normalized get_billing_cost request. Start and End stay
// zero when the caller omits the boundary; the handler applies the 30-day
// default window against its clock.
type BillingCost struct {
	Project
	Start   time.Time
	End     time.Time
	GroupBy []string
}

func NewBillingCost(projectID, startDate, endDate string, groupBy []string) (BillingCost, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return BillingCost{}, err
	}
	var start, end time.Time
	if startDate != "" {
		if start, err = ParseDate("start_date", startDate); err != nil {
			return BillingCost{}, err
		}
	}
	if endDate != "" {
		if end, err = ParseDate("end_date", endDate); err != nil {
			return BillingCost{}, err
		}
	}
	if len(groupBy) == 0 {
		groupBy = []string{"service"}
	}
	return BillingCost{Project: p, Start: start, End: end, GroupBy: groupBy}, nil
}

// Metrics is a normalized get_metrics request.
type Metrics struct {
	Project
	MetricType  string
	Interval    string
	Aggregation string
}

func NewMetrics(projectID, metricType, interval, aggregation string) (Metrics, error) {
	p, err := NewProject(projectID)
	if err != nil {
		return Metrics{}, err
	}
	if metricType == "" {
		return Metrics{}, &ValidationError{Field: "metric_type", Reason: "is required"}
	}
	if interval == "" {
		interval = "1h"
	}
	if aggregation == "" {
		aggregation = "mean"
	}
	return Metrics{Project: p, MetricType: metricType, Interval: interval, Aggregation: aggregation}, nil
}
