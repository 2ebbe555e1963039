// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CVRecord is the predicate function for cvrecord builders.
type CVRecord func(*sql.Selector)

// Offer is the predicate function for offer builders.
type Offer func(*sql.Selector)

// OfferApplication is the predicate function for offerapplication builders.
type OfferApplication func(*sql.Selector)
