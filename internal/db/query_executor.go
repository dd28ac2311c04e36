package db

import (
	"gorm.io/gorm"
)

// QueryExecutor runs the read-only raw queries the dashboard needs. The
// repositories use gorm directly; this layer exists for aggregate stats that
// are awkward to express through the ORM.
type QueryExecutor struct {
	DB *gorm.DB
}

// NewQueryExecutor creates a new instance of QueryExecutor.
func NewQueryExecutor(db *gorm.DB) *QueryExecutor {
	return &QueryExecutor{DB: db}
}

// Select executes a raw select query and returns the results.
func (qe *QueryExecutor) Select(query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := qe.DB.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []map[string]interface{}{}
	cols, _ := rows.Columns()
	scanArgs := make([]interface{}, len(cols))
	for rows.Next() {
		rowData := make([]interface{}, len(cols))
		for i := range rowData {
			scanArgs[i] = &rowData[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}
		record := make(map[string]interface{})
		for i, col := range cols {
			record[col] = rowData[i]
		}
		results = append(results, record)
	}
	return results, rows.Err()
}

// SelectScalar executes a query expected to return a single numeric value,
// e.g. a COUNT or AVG over projects.
func (qe *QueryExecutor) SelectScalar(query string, args ...interface{}) (float64, error) {
	var value float64
	err := qe.DB.Raw(query, args...).Scan(&value).Error
	return value, err
}

// Count returns the number of rows that match the given conditions.
func (qe *QueryExecutor) Count(table string, conditions map[string]interface{}) (int64, error) {
	var count int64
	result := qe.DB.Table(table).Where(conditions).Count(&count)
	return count, result.Error
}
