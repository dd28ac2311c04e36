package service

import (
	"fmt"

	"asg-backend-V2.0/internal/db"
	"asg-backend-V2.0/internal/db/query"
	"asg-backend-V2.0/internal/model"
)

// DashboardStats summarizes the project portfolio for the dashboard cards.
type DashboardStats struct {
	TotalProjects   int64                     `json:"total_projects"`
	AverageASGScore float64                   `json:"average_asg_score"`
	ByRiskLevel     map[model.RiskLevel]int64 `json:"by_risk_level"`
	ByPhase         map[model.Phase]int64     `json:"by_phase"`
	ByStatus        map[string]int64          `json:"by_status"`
}

// StatsFilter narrows the dashboard to a portfolio slice. Empty fields match
// everything.
type StatsFilter struct {
	Phase  model.Phase
	Status string
}

type DashboardService interface {
	Stats(filter StatsFilter) (*DashboardStats, error)
}

type dashboardService struct {
	executor *db.QueryExecutor
}

func NewDashboardService(executor *db.QueryExecutor) DashboardService {
	return &dashboardService{executor: executor}
}

func (s *dashboardService) Stats(filter StatsFilter) (*DashboardStats, error) {
	stats := &DashboardStats{
		ByRiskLevel: make(map[model.RiskLevel]int64),
		ByPhase:     make(map[model.Phase]int64),
		ByStatus:    make(map[string]int64),
	}

	applyFilter := func(qb *query.QueryBuilder) *query.QueryBuilder {
		if filter.Phase != "" {
			qb = qb.Where("current_phase = ?", string(filter.Phase))
		}
		if filter.Status != "" {
			qb = qb.Where("status = ?", filter.Status)
		}
		return qb
	}

	countSQL, countArgs := applyFilter(query.NewQueryBuilder().
		Select("COUNT(*)").From("projects")).Build()
	total, err := s.executor.SelectScalar(countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	stats.TotalProjects = int64(total)

	avgSQL, avgArgs := applyFilter(query.NewQueryBuilder().
		Select("COALESCE(AVG(asg_score), 0)").From("projects")).Build()
	avg, err := s.executor.SelectScalar(avgSQL, avgArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}
	stats.AverageASGScore = avg

	groupCounts := func(column string) ([]map[string]interface{}, error) {
		sql, args := applyFilter(query.NewQueryBuilder().
			Select(column, "COUNT(*) AS total").From("projects")).
			GroupBy(column).Build()
		return s.executor.Select(sql, args...)
	}

	riskRows, err := groupCounts("risk_level")
	if err != nil {
		return nil, fmt.Errorf("failed to group by risk level: %w", err)
	}
	for _, row := range riskRows {
		stats.ByRiskLevel[model.RiskLevel(asString(row["risk_level"]))] = asInt64(row["total"])
	}

	phaseRows, err := groupCounts("current_phase")
	if err != nil {
		return nil, fmt.Errorf("failed to group by phase: %w", err)
	}
	for _, row := range phaseRows {
		stats.ByPhase[model.Phase(asString(row["current_phase"]))] = asInt64(row["total"])
	}

	statusRows, err := groupCounts("status")
	if err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	for _, row := range statusRows {
		stats.ByStatus[asString(row["status"])] = asInt64(row["total"])
	}

	return stats, nil
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
