package search

import (
	"gopkg.in/yaml.v2"
)

// Result is a single hit. Only the fields selected in the search
// configuration are populated; reading any other field panics with
// an AccessError. Results are built by the engine only.
type Result struct {
	fields   Field
	queryID  int
	cursor   Walker
	refID    int
	refBegin int
}

// newResult is the builder reserved to the engine
func newResult(fields Field, queryID int, cursor Walker, refID int, refBegin int) Result {
	return Result{
		fields:   fields,
		queryID:  queryID,
		cursor:   cursor,
		refID:    refID,
		refBegin: refBegin,
	}
}

// Has tells whether a field is present on this result
func (r Result) Has(f Field) bool {
	return r.fields&f != 0
}

// QueryID returns the id of the query that produced the hit
func (r Result) QueryID() int {
	if !r.Has(FieldQueryID) {
		panic(AccessError{Field: "query_id"})
	}
	return r.queryID
}

// Cursor returns the cursor at the end of the match
func (r Result) Cursor() Walker {
	if !r.Has(FieldCursor) {
		panic(AccessError{Field: "cursor"})
	}
	return r.cursor
}

// RefID returns the reference the hit occurs in
func (r Result) RefID() int {
	if !r.Has(FieldRefID) {
		panic(AccessError{Field: "reference_id"})
	}
	return r.refID
}

// RefBegin returns the begin position of the hit in its reference
func (r Result) RefBegin() int {
	if !r.Has(FieldRefBegin) {
		panic(AccessError{Field: "reference_begin_position"})
	}
	return r.refBegin
}

// Equal compares two results on their present fields only
func (r Result) Equal(o Result) bool {
	if r.fields != o.fields {
		return false
	}
	if r.Has(FieldQueryID) && r.queryID != o.queryID {
		return false
	}
	if r.Has(FieldCursor) {
		rl, ru := r.cursor.Range()
		ol, ou := o.cursor.Range()
		if rl != ol || ru != ou || r.cursor.Depth() != o.cursor.Depth() {
			return false
		}
	}
	if r.Has(FieldRefID) && r.refID != o.refID {
		return false
	}
	if r.Has(FieldRefBegin) && r.refBegin != o.refBegin {
		return false
	}
	return true
}

// Dumps serialises the present fields
func (r Result) Dumps() (out []byte, err error) {
	doc := make(map[string]interface{})
	if r.Has(FieldQueryID) {
		doc["query_id"] = r.queryID
	}
	if r.Has(FieldCursor) {
		lower, upper := r.cursor.Range()
		doc["cursor"] = map[string]int{"lower": lower, "upper": upper, "depth": r.cursor.Depth()}
	}
	if r.Has(FieldRefID) {
		doc["reference_id"] = r.refID
	}
	if r.Has(FieldRefBegin) {
		doc["reference_begin_position"] = r.refBegin
	}
	return yaml.Marshal(doc)
}
