// Package bench produces merge_sort_results.csv.
//
// It reads the semicolon separated inpatient disease dataset, then sorts
// growing prefixes of it with the recursive and the iterative merge sort and
// records time, comparison count, overhead and winner for every size. The
// resulting measurement.Table is the input of the report generator.
package bench
