// Package reports turns fully materialized marketplace collections into the
// admin views: headline counts, trends, rankings and enriched listings.
//
// Functions here never touch a store and never fail. Unresolved references are
// replaced by a sentinel name or the record is dropped, and records without a
// readable date are left out of time buckets only.
package reports
