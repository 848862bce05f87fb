package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Predicate is a single named filter condition. Predicates are assembled by
// callers and rendered to the store's native query shape only inside this
// package, so call sites never build untyped filter documents.
type Predicate interface {
	clause() bson.M
}

// Filter is a conjunction of predicates.
type Filter []Predicate

// Where builds a filter from the given predicates.
func Where(preds ...Predicate) Filter {
	return Filter(preds)
}

// document renders the filter to a BSON document. Predicates that contribute
// nothing (e.g. an empty disjunction) are skipped.
func (f Filter) document() bson.M {
	doc := bson.M{}
	for _, p := range f {
		for field, cond := range p.clause() {
			doc[field] = cond
		}
	}
	return doc
}

type eqPredicate struct {
	field string
	value any
}

func (p eqPredicate) clause() bson.M {
	return bson.M{p.field: p.value}
}

// Eq matches documents whose field equals value.
func Eq(field string, value any) Predicate {
	return eqPredicate{field: field, value: value}
}

type nePredicate struct {
	field string
	value any
}

func (p nePredicate) clause() bson.M {
	return bson.M{p.field: bson.M{"$ne": p.value}}
}

// Ne matches documents whose field does not equal value.
func Ne(field string, value any) Predicate {
	return nePredicate{field: field, value: value}
}

type inPredicate struct {
	field  string
	values []string
}

func (p inPredicate) clause() bson.M {
	return bson.M{p.field: bson.M{"$in": p.values}}
}

// In matches documents whose field equals, or whose array field contains,
// any of the given values.
func In(field string, values ...string) Predicate {
	return inPredicate{field: field, values: values}
}

type containsPredicate struct {
	field  string
	substr string
}

func (p containsPredicate) clause() bson.M {
	return bson.M{p.field: primitive.Regex{
		Pattern: regexp.QuoteMeta(p.substr),
		Options: "i",
	}}
}

// Contains matches documents whose string field contains substr,
// case-insensitively. The substring is escaped, never interpreted
// as a pattern.
func Contains(field, substr string) Predicate {
	return containsPredicate{field: field, substr: substr}
}

type anyOfPredicate struct {
	preds []Predicate
}

func (p anyOfPredicate) clause() bson.M {
	clauses := make([]bson.M, 0, len(p.preds))
	for _, pred := range p.preds {
		if c := pred.clause(); len(c) > 0 {
			clauses = append(clauses, c)
		}
	}
	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$or": clauses}
}

// AnyOf matches documents satisfying at least one of the given predicates.
// With no predicates it contributes nothing to the filter, so the
// surrounding conjunction degenerates gracefully.
func AnyOf(preds ...Predicate) Predicate {
	return anyOfPredicate{preds: preds}
}
