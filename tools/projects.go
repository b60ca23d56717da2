package tools

import "context"

// ListProjects returns every project the credentials can see. Convenience
// for pickers; not part of the tool dispatch surface.
func (t *Toolset) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := t.Projects.SearchProjects(ctx, "")
	if err != nil {
		return nil, providerErr("list projects", err)
	}
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponse{
			ProjectID: p.GetProjectId(),
			Name:      p.GetDisplayName(),
			State:     p.GetState().String(),
		})
	}
	return out, nil
}
