package tools

import (
	"context"
	"strings"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"

	"gcpkit/auth"
)

// Toolset bundles the service clients behind narrow interfaces. One value
// serves a whole process; tool calls hold no state of their own.
type Toolset struct {
	Compute  ComputeAPI
	Storage  StorageAPI
	Billing  BillingAPI
	Projects ProjectsAPI

	// Now is the billing clock. Tests inject a fixed time.
	Now func() time.Time

	// The metrics tool does not query time series yet; the client is still
	// constructed so credential problems surface at startup.
	monitoring *monitoring.MetricClient
}

// New builds a Toolset from a client factory.
func New(ctx context.Context, factory *auth.ClientFactory) (*Toolset, error) {
	computeSvc, err := factory.Compute(ctx)
	if err != nil {
		return nil, err
	}
	storageClient, err := factory.Storage(ctx)
	if err != nil {
		return nil, err
	}
	billingClient, err := factory.Billing(ctx)
	if err != nil {
		return nil, err
	}
	projectsClient, err := factory.Projects(ctx)
	if err != nil {
		return nil, err
	}
	monitoringClient, err := factory.Monitoring(ctx)
	if err != nil {
		return nil, err
	}
	return &Toolset{
		Compute:    &gcpCompute{svc: computeSvc},
		Storage:    &gcpStorage{client: storageClient},
		Billing:    &gcpBilling{client: billingClient},
		Projects:   &gcpProjects{client: projectsClient},
		Now:        time.Now,
		monitoring: monitoringClient,
	}, nil
}

func (t *Toolset) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// lastSegment returns the trailing path element of a resource URL.
func lastSegment(url string) string {
	if url == "" {
		return ""
	}
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

// regionOfZone strips the zone suffix: "us-central1-a" -> "us-central1".
func regionOfZone(zone string) string {
	i := strings.LastIndex(zone, "-")
	if i < 0 {
		return zone
	}
	return zone[:i]
}
