package query

import "testing"

func TestBuildSelectAll(t *testing.T) {
	sql, args := NewQueryBuilder().From("projects").Build()
	if sql != "SELECT * FROM projects" {
		t.Errorf("unexpected sql: %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildWithConditionsAndGroupBy(t *testing.T) {
	sql, args := NewQueryBuilder().
		Select("risk_level", "COUNT(*) AS total").
		From("projects").
		Where("current_phase = ?", "construction").
		Where("status = ?", "in_progress").
		GroupBy("risk_level").
		Build()

	want := "SELECT risk_level, COUNT(*) AS total FROM projects" +
		" WHERE current_phase = ? AND status = ? GROUP BY risk_level"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "construction" || args[1] != "in_progress" {
		t.Errorf("unexpected args: %v", args)
	}
}
