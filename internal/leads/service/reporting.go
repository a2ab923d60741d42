package service

import (
	"context"

	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/internal/leads/transport"
	"leadtrack_backend/platform/apperr"
)

// Stats aggregates the leads visible to the scope into dashboard counts.
// Every status and source appears in the maps, zero filled, so dashboards
// never have to guess at missing keys.
func (s *Service) Stats(ctx context.Context, scope access.Scope) (transport.StatsResponse, error) {
	stats, err := s.repo.GetStats(ctx, scope)
	if err != nil {
		s.log.DatabaseError("lead stats", err)
		return transport.StatsResponse{}, apperr.Wrap(apperr.KindInternal, "failed to compute stats", err)
	}

	statusCounts := make(map[string]int, len(domain.AllStatuses()))
	for _, status := range domain.AllStatuses() {
		statusCounts[string(status)] = stats.ByStatus[status]
	}
	sourceCounts := make(map[string]int, len(domain.AllSources()))
	for _, source := range domain.AllSources() {
		sourceCounts[string(source)] = stats.BySource[source]
	}

	return transport.StatsResponse{
		TotalLeads:     stats.Total,
		StatusCounts:   statusCounts,
		SourceCounts:   sourceCounts,
		MyLeads:        stats.My,
		ConversionRate: domain.ConversionRate(stats.Won, stats.Lost),
	}, nil
}

// AgentStats returns the per-assignee rollup for managers and admins.
// Agents only see their own aggregate through Stats, never the rollup.
func (s *Service) AgentStats(ctx context.Context, scope access.Scope) ([]transport.AssigneeStatsResponse, error) {
	if !scope.AllowsTeamRollup() {
		return nil, apperr.Forbidden("agent statistics require a manager or admin role")
	}

	rollup, err := s.repo.GetAssigneeRollup(ctx, scope)
	if err != nil {
		s.log.DatabaseError("assignee rollup", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to compute agent stats", err)
	}

	out := make([]transport.AssigneeStatsResponse, 0, len(rollup))
	for _, item := range rollup {
		out = append(out, transport.AssigneeStatsResponse{
			AssigneeID:     item.AssigneeID,
			Name:           item.Name,
			TotalLeads:     item.Total,
			WonLeads:       item.Won,
			LostLeads:      item.Lost,
			ConversionRate: domain.ConversionRate(item.Won, item.Lost),
		})
	}

	return out, nil
}
