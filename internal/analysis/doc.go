// Package analysis derives the statistics behind the merge sort report.
//
// Everything here is pure computation over a measurement.Table: descriptive
// statistics of the overhead column, winner tallies, final-row differences and
// the O(n log n) reference curves calibrated on the largest observed size.
// Nothing in this package renders or writes files, so charts and the console
// summary consume one Summary value.
package analysis
