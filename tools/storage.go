package tools

import (
	"context"
	"fmt"

	"gcpkit/request"
)

// ListBuckets returns the names of all storage buckets in a project.
func (t *Toolset) ListBuckets(ctx context.Context, projectID string) ([]string, error) {
	req, err := request.NewProject(projectID)
	if err != nil {
		return nil, err
	}
	buckets, err := t.Storage.ListBuckets(ctx, req.ProjectID)
	if err != nil {
		return nil, providerErr("list buckets", err)
	}
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// CreateBucket creates a bucket and, when requested, patches versioning on
// in a second call.
func (t *Toolset) CreateBucket(ctx context.Context, projectID, bucketName, location, storageClass string, versioning bool) (*SuccessResponse, error) {
	req, err := request.NewBucketCreate(projectID, bucketName, location, storageClass, versioning)
	if err != nil {
		return nil, err
	}
	if err := t.Storage.CreateBucket(ctx, req.ProjectID, req.BucketName, req.Location, req.StorageClass); err != nil {
		return nil, providerErr("create bucket", err)
	}
	if req.Versioning {
		if err := t.Storage.SetVersioning(ctx, req.BucketName, true); err != nil {
			return nil, providerErr("enable versioning on bucket "+req.BucketName, err)
		}
	}
	return &SuccessResponse{
		Message: fmt.Sprintf("Bucket %s created successfully in %s", req.BucketName, req.Location),
		Success: true,
	}, nil
}

// DeleteBucket deletes a bucket.
func (t *Toolset) DeleteBucket(ctx context.Context, projectID, bucketName string) (*SuccessResponse, error) {
	req, err := request.NewBucketDelete(projectID, bucketName)
	if err != nil {
		return nil, err
	}
	if err := t.Storage.DeleteBucket(ctx, req.BucketName); err != nil {
		return nil, providerErr("delete bucket", err)
	}
	return &SuccessResponse{
		Message: fmt.Sprintf("Bucket %s deleted successfully", req.BucketName),
		Success: true,
	}, nil
}
