package query

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles the read-only SELECT statements the dashboard stats
// run against the projects table. Conditions are joined with AND and bound
// as placeholders.
type QueryBuilder struct {
	table      string
	conditions []string
	columns    []string
	values     []interface{}
	groupBy    string
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	qb.columns = append(qb.columns, columns...)
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

func (qb *QueryBuilder) Where(condition string, args ...interface{}) *QueryBuilder {
	qb.conditions = append(qb.conditions, condition)
	qb.values = append(qb.values, args...)
	return qb
}

func (qb *QueryBuilder) GroupBy(column string) *QueryBuilder {
	qb.groupBy = column
	return qb
}

func (qb *QueryBuilder) Build() (string, []interface{}) {
	var query strings.Builder

	if len(qb.columns) > 0 {
		query.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(qb.columns, ", "), qb.table))
	} else {
		query.WriteString(fmt.Sprintf("SELECT * FROM %s", qb.table))
	}

	if len(qb.conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
	}
	if qb.groupBy != "" {
		query.WriteString(" GROUP BY " + qb.groupBy)
	}

	return query.String(), qb.values
}
