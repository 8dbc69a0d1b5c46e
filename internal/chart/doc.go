// Package chart renders the five merge sort report charts as PNG files with
// gonum/plot.
//
// Every chart is described by a Spec (file name, size and a builder). Builders
// only read a measurement.Table and its analysis.Summary. The Renderer
// rasterises the resulting figure at the configured DPI and writes the file,
// replacing any previous output.
package chart
