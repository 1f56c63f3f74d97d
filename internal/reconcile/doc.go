// Package reconcile maps canonical metadata onto destination catalog columns
// and applies the update.
//
// The field mapping is the wire contract with the catalog database: column
// names, the composed "<original> (<display>)" title form, the poster file
// reference, the 30-minute short-film classification, and the rule that
// absent values are omitted keys rather than explicit empties. A configurable
// exclusion list drops columns from the payload after all other rules.
package reconcile
