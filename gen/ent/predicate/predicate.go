// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// SlipFile is the predicate function for slipfile builders.
type SlipFile func(*sql.Selector)
