package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of bins 0 through n/2.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantCycles is the index of the strongest non-DC bin, which is the
// number of full periods across the trace. Traces shorter than three samples
// or without variation report zero.
func DominantCycles(data []float64) int {
	if len(data) < 3 {
		return 0
	}
	ps := PowerSpectrum(removeMean(data))
	best, bestMag := 0, 1e-9
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestMag {
			best, bestMag = i, ps[i]
		}
	}
	return best
}

func removeMean(data []float64) []float64 {
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}

type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	RMS   float64
}

func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(data), Min: math.Inf(1), Max: math.Inf(-1)}
	sq := 0.0
	for _, v := range data {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		s.Mean += v
		sq += v * v
	}
	s.Mean /= float64(len(data))
	s.RMS = math.Sqrt(sq / float64(len(data)))
	return s
}
