package httpapi

import (
	"fmt"
	"strings"
)

// updateSet collects the columns of a partial update; absent fields never
// reach the statement, so "not provided" and "set to zero value" stay
// distinguishable.
type updateSet struct {
	columns []string
	values  []interface{}
}

func newUpdateSet() *updateSet {
	return &updateSet{}
}

func (u *updateSet) add(column string, value interface{}) {
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
}

func (u *updateSet) empty() bool {
	return len(u.columns) == 0
}

func (u *updateSet) query(table string) string {
	assignments := make([]string, 0, len(u.columns))
	for i, column := range u.columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+2))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(assignments, ", "))
}

func (u *updateSet) args(id string) []interface{} {
	args := make([]interface{}, 0, len(u.values)+1)
	args = append(args, id)
	args = append(args, u.values...)
	return args
}
