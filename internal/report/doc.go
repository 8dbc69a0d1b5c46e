// Package report turns a merge sort measurement table into the five chart
// files and the console statistical summary.
//
// A run loads and validates the table, derives every statistic once, then
// renders the charts in a fixed order and prints the summary. Nothing is
// written when the input cannot be loaded or analysed.
package report
