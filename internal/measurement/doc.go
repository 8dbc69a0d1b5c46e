// Package measurement defines the Measurement Table produced by the merge sort
// benchmark and consumed by the report generator.
//
// A table is an ordered list of rows, one per tested input size N, holding the
// measured time and comparison count of the recursive and iterative
// implementations together with the relative overhead and the winner.
//
// Tables are read from CSV files whose header names the columns:
//
//	N,Recursive_ms,Iterative_ms,Recursive_comparisons,Iterative_comparisons,Overhead_Percent,Winner
//
// Columns are located by name, so producers may emit them in any order.
// Every row is validated (positive N, non-negative times and counts, finite
// overhead, known winner) and rows must ascend by N. A file without data
// rows is rejected.
package measurement
