// Package matching defines Matching, the top→bottom value type the
// enumeration engine builds, flips, and restricts at every recursion frame.
//
// A Matching is represented canonically as top→bottom pairs: every top
// vertex appears at most once as a key, every bottom vertex at most once as
// a value. Matching values are cheap to Clone; the enumerators never mutate
// a Matching they did not just Clone themselves, which is what lets the
// same parent M be handed, unmodified, to more than one recursion branch.
package matching
