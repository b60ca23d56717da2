package tools

import (
	"context"

	"gcpkit/request"
)

// GetMetrics validates the metrics request and returns a well-formed
// empty-data response. The time-series query itself is not wired up yet;
// callers get the final record shape with no data points.
func (t *Toolset) GetMetrics(ctx context.Context, projectID, metricType, interval, aggregation string) (*MetricsResponse, error) {
	req, err := request.NewMetrics(projectID, metricType, interval, aggregation)
	if err != nil {
		return nil, err
	}
	_ = ctx
	return &MetricsResponse{
		Message:     "Metrics retrieved for " + req.MetricType,
		ProjectID:   req.ProjectID,
		MetricType:  req.MetricType,
		Interval:    req.Interval,
		Aggregation: req.Aggregation,
		Data:        map[string]any{},
	}, nil
}
