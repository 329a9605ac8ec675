// Package analysis summarizes the value traces of stored runs.
//
//   - [PowerSpectrum]: magnitude spectrum of a real trace
//   - [DominantCycles]: number of full cycles the trace makes
//   - [Summarize]: count, range, mean and RMS
//
// A single sine or cosine rotation makes one cycle:
//
//	cycles := analysis.DominantCycles(storage.Values(samples))
package analysis
