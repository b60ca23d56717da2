// Package server exposes the toolset over a small HTTP JSON protocol:
// POST /tools/{name} with a parameter object returns the enveloped result,
// GET /tools returns the catalog. Handler failures are part of the envelope;
// only undecodable bodies and unknown tools get non-200 statuses.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"gcpkit/tools"
)

// Server dispatches tool calls to a Toolset.
type Server struct {
	tools *tools.Toolset
}

func New(ts *tools.Toolset) *Server {
	return &Server{tools: ts}
}

// callParams is the union of every tool's parameters; each tool reads the
// fields it documents and ignores the rest.
type callParams struct {
	ProjectID      string   `json:"project_id"`
	Zone           string   `json:"zone"`
	Region         string   `json:"region"`
	BucketName     string   `json:"bucket_name"`
	Location       string   `json:"location"`
	StorageClass   string   `json:"storage_class"`
	Versioning     bool     `json:"versioning"`
	InstanceName   string   `json:"instance_name"`
	MachineType    string   `json:"machine_type"`
	ImageFamily    string   `json:"image_family"`
	DiskSizeGB     int64    `json:"disk_size_gb"`
	Network        string   `json:"network"`
	Subnetwork     string   `json:"subnetwork"`
	Tags           []string `json:"tags"`
	ServiceAccount string   `json:"service_account"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	GroupBy        []string `json:"group_by"`
	MetricType     string   `json:"metric_type"`
	Interval       string   `json:"interval"`
	Aggregation    string   `json:"aggregation"`
}

// ToolInfo describes one catalog entry.
type ToolInfo struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
}

// Catalog lists the dispatchable tools and their documented parameters.
func Catalog() []ToolInfo {
	return []ToolInfo{
		{Name: "list_buckets", Params: []string{"project_id"}},
		{Name: "create_bucket", Params: []string{"project_id", "bucket_name", "location", "storage_class", "versioning"}},
		{Name: "delete_bucket", Params: []string{"project_id", "bucket_name"}},
		{Name: "list_instances", Params: []string{"project_id", "zone"}},
		{Name: "create_instance", Params: []string{"project_id", "zone", "instance_name", "machine_type", "image_family", "disk_size_gb", "network", "subnetwork", "tags", "service_account"}},
		{Name: "delete_instance", Params: []string{"project_id", "zone", "instance_name"}},
		{Name: "list_ip_addresses", Params: []string{"project_id", "region"}},
		{Name: "list_persistent_disks", Params: []string{"project_id", "zone"}},
		{Name: "list_vpc_networks_and_subnets", Params: []string{"project_id"}},
		{Name: "list_load_balancers", Params: []string{"project_id", "region"}},
		{Name: "get_billing_cost", Params: []string{"project_id", "start_date", "end_date", "group_by"}},
		{Name: "get_metrics", Params: []string{"project_id", "metric_type", "interval", "aggregation"}},
	}
}

// Handler returns the HTTP handler for the dispatch protocol.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools", s.handleCatalog)
	mux.HandleFunc("POST /tools/{name}", s.handleCall)
	return mux
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Catalog())
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var p callParams
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "request body must be a JSON object", http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	var out any
	switch name {
	case "list_buckets":
		out = tools.Wrap(s.tools.ListBuckets(ctx, p.ProjectID))
	case "create_bucket":
		out = tools.Wrap(s.tools.CreateBucket(ctx, p.ProjectID, p.BucketName, p.Location, p.StorageClass, p.Versioning))
	case "delete_bucket":
		out = tools.Wrap(s.tools.DeleteBucket(ctx, p.ProjectID, p.BucketName))
	case "list_instances":
		out = tools.Wrap(s.tools.ListInstances(ctx, p.ProjectID, p.Zone))
	case "create_instance":
		out = tools.Wrap(s.tools.CreateInstance(ctx, tools.CreateInstanceParams{
			ProjectID:      p.ProjectID,
			Zone:           p.Zone,
			InstanceName:   p.InstanceName,
			MachineType:    p.MachineType,
			ImageFamily:    p.ImageFamily,
			DiskSizeGB:     p.DiskSizeGB,
			Network:        p.Network,
			Subnetwork:     p.Subnetwork,
			Tags:           p.Tags,
			ServiceAccount: p.ServiceAccount,
		}))
	case "delete_instance":
		out = tools.Wrap(s.tools.DeleteInstance(ctx, p.ProjectID, p.Zone, p.InstanceName))
	case "list_ip_addresses":
		out = tools.Wrap(s.tools.ListIPAddresses(ctx, p.ProjectID, p.Region))
	case "list_persistent_disks":
		out = tools.Wrap(s.tools.ListPersistentDisks(ctx, p.ProjectID, p.Zone))
	case "list_vpc_networks_and_subnets":
		out = tools.Wrap(s.tools.ListVPCNetworks(ctx, p.ProjectID))
	case "list_load_balancers":
		out = tools.Wrap(s.tools.ListLoadBalancers(ctx, p.ProjectID, p.Region))
	case "get_billing_cost":
		out = tools.Wrap(s.tools.GetBillingCost(ctx, p.ProjectID, p.StartDate, p.EndDate, p.GroupBy))
	case "get_metrics":
		out = tools.Wrap(s.tools.GetMetrics(ctx, p.ProjectID, p.MetricType, p.Interval, p.Aggregation))
	default:
		http.Error(w, "unknown tool: "+name, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

// Start runs the dispatch server on addr until it fails.
func Start(addr string, ts *tools.Toolset) error {
	log.Printf("Starting tool server on %s", addr)
	return http.ListenAndServe(addr, New(ts).Handler())
}
