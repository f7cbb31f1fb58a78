package domain

import (
	"fmt"
	"strconv"
)

// FilterField is a closed enumeration of the conference fields a client may
// filter on.
type FilterField string

const (
	FieldCity         FilterField = "city"
	FieldTopics       FilterField = "topics"
	FieldMonth        FilterField = "month"
	FieldMaxAttendees FilterField = "maxAttendees"
)

// FilterOp is a closed enumeration of comparison operators.
type FilterOp string

const (
	OpEqual          FilterOp = "="
	OpGreaterThan    FilterOp = ">"
	OpGreaterOrEqual FilterOp = ">="
	OpLessThan       FilterOp = "<"
	OpLessOrEqual    FilterOp = "<="
	OpNotEqual       FilterOp = "!="
)

// Wire tokens accepted from clients, mapped to the closed enumerations above.
var (
	filterFields = map[string]FilterField{
		"CITY":          FieldCity,
		"TOPIC":         FieldTopics,
		"MONTH":         FieldMonth,
		"MAX_ATTENDEES": FieldMaxAttendees,
	}
	filterOps = map[string]FilterOp{
		"EQ":   OpEqual,
		"GT":   OpGreaterThan,
		"GTEQ": OpGreaterOrEqual,
		"LT":   OpLessThan,
		"LTEQ": OpLessOrEqual,
		"NE":   OpNotEqual,
	}
)

// Filter is a raw client-supplied filter clause.
// swagger:model Filter
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Clause is a validated filter clause. Value is a string for city/topics and
// an int for month/maxAttendees.
type Clause struct {
	Field FilterField
	Op    FilterOp
	Value any
}

// IsNumeric reports whether the field carries an integer value.
func (f FilterField) IsNumeric() bool {
	return f == FieldMonth || f == FieldMaxAttendees
}

// QueryPlan is an ordered, validated set of clauses over conferences.
// InequalityField is empty when every clause uses equality. The execution
// order is: InequalityField ascending (when set), then name ascending; the
// storage layer requires the first sort key to match the sole inequality
// field, and name gives a deterministic tiebreak.
type QueryPlan struct {
	Clauses         []Clause
	InequalityField FilterField
}

// CompileFilters validates and orders client filters into a query plan.
//
// Unknown field or operator tokens and non-numeric values for numeric fields
// fail with ErrInvalidFilter. Clauses with a non-equality operator may
// reference at most one distinct field across the whole list; a second
// inequality field fails with ErrMultipleInequalityFilters.
func CompileFilters(filters []Filter) (*QueryPlan, error) {
	plan := &QueryPlan{Clauses: make([]Clause, 0, len(filters))}

	for _, f := range filters {
		field, ok := filterFields[f.Field]
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidFilter, f.Field)
		}
		op, ok := filterOps[f.Operator]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrInvalidFilter, f.Operator)
		}

		var value any = f.Value
		if field.IsNumeric() {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s requires an integer value, got %q", ErrInvalidFilter, field, f.Value)
			}
			value = n
		}

		if op != OpEqual {
			if plan.InequalityField != "" && plan.InequalityField != field {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleInequalityFilters, plan.InequalityField, field)
			}
			plan.InequalityField = field
		}

		plan.Clauses = append(plan.Clauses, Clause{Field: field, Op: op, Value: value})
	}

	return plan, nil
}
