// Package queryfile loads batches of maze queries from HCL files.
//
// A file is a list of labelled query blocks:
//
//	query "corner" {
//	  from      = [0, 0]
//	  to        = [3, 3]
//	  reachable = 9 # optional: report NumReachable for k = 0..9
//	}
//
// Queries keep file order. Names must be unique, coordinates are pairs of
// integers, reachable must not be negative.
package queryfile
