/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package query builds parameterised Postgres statements for the filter, projection, ordering
// and paging operations the services need from the data store.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/wso2/icp-lead-service/internal/system/database/client"
)

// ErrBuild marks a statement that could not be rendered. No query is sent to the database for it.
var ErrBuild = errors.New("invalid statement")

// IsBuildError reports whether err (or anything it wraps) came from rendering a statement.
func IsBuildError(err error) bool {
	return errors.Is(err, ErrBuild)
}

type Operator string

const (
	OpEq         Operator = "eq"
	OpContains   Operator = "co"
	OpStartsWith Operator = "sw"
	OpGte        Operator = "ge"
	OpLte        Operator = "le"
	OpIn         Operator = "in"
	OpNotNull    Operator = "nn"
)

// Filter is a single predicate. All filters of a statement are ANDed.
type Filter struct {
	Column   string
	Operator Operator
	Value    interface{}
}

func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpEq, Value: value}
}

// Contains matches a case-insensitive substring.
func Contains(column, value string) Filter {
	return Filter{Column: column, Operator: OpContains, Value: value}
}

// StartsWith matches a case-insensitive prefix.
func StartsWith(column, value string) Filter {
	return Filter{Column: column, Operator: OpStartsWith, Value: value}
}

func Gte(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpGte, Value: value}
}

func Lte(column string, value interface{}) Filter {
	return Filter{Column: column, Operator: OpLte, Value: value}
}

// In matches rows whose column is one of values.
func In(column string, values []string) Filter {
	return Filter{Column: column, Operator: OpIn, Value: values}
}

func NotNull(column string) Filter {
	return Filter{Column: column, Operator: OpNotNull}
}

type Order struct {
	Column     string
	Descending bool
}

// Select is a projection over one table.
type Select struct {
	Table   string
	Columns []string
	Filters []Filter
	Order   *Order
	Limit   int
	Offset  int
}

// Count counts the rows of one table matching the filters.
type Count struct {
	Table   string
	Filters []Filter
}

// Table joins a schema and a table name into a qualified reference.
func Table(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}

// Build renders the statement and its positional arguments.
func (s Select) Build() (string, []interface{}, error) {

	if s.Table == "" {
		return "", nil, fmt.Errorf("select requires a table")
	}
	if len(s.Columns) == 0 {
		return "", nil, fmt.Errorf("select on %s requires at least one column", s.Table)
	}
	if s.Limit < 0 || s.Offset < 0 {
		return "", nil, fmt.Errorf("limit and offset must not be negative")
	}

	columns := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		if col == "" {
			return "", nil, fmt.Errorf("empty column name in select on %s", s.Table)
		}
		columns[i] = pq.QuoteIdentifier(col)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(quoteTable(s.Table))

	where, args, err := buildWhere(s.Filters)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)

	if s.Order != nil {
		if s.Order.Column == "" {
			return "", nil, fmt.Errorf("order requires a column")
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(pq.QuoteIdentifier(s.Order.Column))
		if s.Order.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	if s.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", s.Limit)
	}
	if s.Offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", s.Offset)
	}
	return sb.String(), args, nil
}

// Build renders the count statement and its positional arguments.
func (c Count) Build() (string, []interface{}, error) {

	if c.Table == "" {
		return "", nil, fmt.Errorf("count requires a table")
	}
	where, args, err := buildWhere(c.Filters)
	if err != nil {
		return "", nil, err
	}
	return "SELECT COUNT(*) AS count FROM " + quoteTable(c.Table) + where, args, nil
}

// Execute builds and runs a select.
func Execute(ctx context.Context, dbClient client.DBClientInterface, s Select) ([]map[string]interface{}, error) {

	sqlText, args, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return dbClient.ExecuteQuery(ctx, sqlText, args...)
}

// CountRows builds and runs a count.
func CountRows(ctx context.Context, dbClient client.DBClientInterface, c Count) (int64, error) {

	sqlText, args, err := c.Build()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	rows, err := dbClient.ExecuteQuery(ctx, sqlText, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	total := Int64Value(rows[0], "count")
	if total == nil {
		return 0, fmt.Errorf("count on %s returned no value", c.Table)
	}
	return *total, nil
}

func buildWhere(filters []Filter) (string, []interface{}, error) {

	if len(filters) == 0 {
		return "", nil, nil
	}
	var conditions []string
	var args []interface{}
	argID := 1

	for _, f := range filters {
		if f.Column == "" {
			return "", nil, fmt.Errorf("filter requires a column")
		}
		col := pq.QuoteIdentifier(f.Column)
		if f.Operator == OpNotNull {
			conditions = append(conditions, col+" IS NOT NULL")
			continue
		}
		if f.Value == nil {
			return "", nil, fmt.Errorf("filter %s %s requires a value", f.Column, f.Operator)
		}

		var clause string
		switch f.Operator {
		case OpEq:
			clause = fmt.Sprintf("%s = $%d", col, argID)
			args = append(args, f.Value)
		case OpContains:
			clause = fmt.Sprintf("%s ILIKE $%d", col, argID)
			args = append(args, "%"+escapeLike(fmt.Sprint(f.Value))+"%")
		case OpStartsWith:
			clause = fmt.Sprintf("%s ILIKE $%d", col, argID)
			args = append(args, escapeLike(fmt.Sprint(f.Value))+"%")
		case OpGte:
			clause = fmt.Sprintf("%s >= $%d", col, argID)
			args = append(args, f.Value)
		case OpLte:
			clause = fmt.Sprintf("%s <= $%d", col, argID)
			args = append(args, f.Value)
		case OpIn:
			values, ok := f.Value.([]string)
			if !ok {
				return "", nil, fmt.Errorf("filter %s in requires a string list", f.Column)
			}
			clause = fmt.Sprintf("%s = ANY($%d)", col, argID)
			args = append(args, pq.Array(values))
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", f.Operator)
		}
		conditions = append(conditions, clause)
		argID++
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

func quoteTable(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input literal inside an ILIKE pattern.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
