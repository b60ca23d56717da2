package auth

import (
	"context"

	"cloud.google.com/go/bigquery"
	billing "cloud.google.com/go/billing/apiv1"
	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/pubsub"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	compute "google.golang.org/api/compute/v1"
)

// ClientFactory hands out service clients bound to a loaded credential
// handle. Clients are constructed per call; the handle itself is the only
// shared state.
type ClientFactory struct {
	creds *Credentials
}

func NewClientFactory(creds *Credentials) *ClientFactory {
	return &ClientFactory{creds: creds}
}

// Credentials returns the handle the factory binds clients to.
func (f *ClientFactory) Credentials() *Credentials { return f.creds }

// Compute returns a Compute Engine client.
func (f *ClientFactory) Compute(ctx context.Context) (*compute.Service, error) {
	svc, err := compute.NewService(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "compute", Err: err}
	}
	return svc, nil
}

// Storage returns a Cloud Storage client.
func (f *ClientFactory) Storage(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "storage", Err: err}
	}
	return client, nil
}

// Billing returns a Cloud Billing client.
func (f *ClientFactory) Billing(ctx context.Context) (*billing.CloudBillingClient, error) {
	client, err := billing.NewCloudBillingClient(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "billing", Err: err}
	}
	return client, nil
}

// Monitoring returns a Cloud Monitoring metric client.
func (f *ClientFactory) Monitoring(ctx context.Context) (*monitoring.MetricClient, error) {
	client, err := monitoring.NewMetricClient(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "monitoring", Err: err}
	}
	return client, nil
}

// Projects returns a Resource Manager projects client.
func (f *ClientFactory) Projects(ctx context.Context) (*resourcemanager.ProjectsClient, error) {
	client, err := resourcemanager.NewProjectsClient(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "resourcemanager", Err: err}
	}
	return client, nil
}

// BigQuery returns a BigQuery client for the given project.
func (f *ClientFactory) BigQuery(ctx context.Context, projectID string) (*bigquery.Client, error) {
	client, err := bigquery.NewClient(ctx, projectID, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "bigquery", Err: err}
	}
	return client, nil
}

// PubSub returns a Pub/Sub client for the given project.
func (f *ClientFactory) PubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	client, err := pubsub.NewClient(ctx, projectID, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "pubsub", Err: err}
	}
	return client, nil
}

// SecretManager returns a Secret Manager client.
func (f *ClientFactory) SecretManager(ctx context.Context) (*secretmanager.Client, error) {
	client, err := secretmanager.NewClient(ctx, f.creds.clientOptions()...)
	if err != nil {
		return nil, &ClientInitError{Service: "secretmanager", Err: err}
	}
	return client, nil
}
