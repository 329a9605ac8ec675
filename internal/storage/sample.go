package storage

import (
	"strconv"

	"github.com/san-kum/trigsim/internal/anim"
)

// Sample is one row of a run trace. Frames outside a rotation have an
// empty Variant.
type Sample struct {
	Frame   int     `json:"frame"`
	Step    int     `json:"step"`
	Variant string  `json:"variant"`
	Alpha   float64 `json:"alpha"`
	Theta   float64 `json:"theta"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	Brace   bool    `json:"brace"`
}

func (s Sample) record() []string {
	return []string{
		strconv.Itoa(s.Frame),
		strconv.Itoa(s.Step),
		s.Variant,
		formatFloat(s.Alpha),
		formatFloat(s.Theta),
		formatFloat(s.X),
		formatFloat(s.Y),
		formatFloat(s.Value),
		strconv.FormatBool(s.Defined),
		strconv.FormatBool(s.Brace),
	}
}

func parseRecord(rec []string) (Sample, error) {
	var s Sample
	var err error
	if s.Frame, err = strconv.Atoi(rec[0]); err != nil {
		return s, err
	}
	if s.Step, err = strconv.Atoi(rec[1]); err != nil {
		return s, err
	}
	s.Variant = rec[2]
	floats := []*float64{&s.Alpha, &s.Theta, &s.X, &s.Y, &s.Value}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(rec[3+i], 64); err != nil {
			return s, err
		}
	}
	if s.Defined, err = strconv.ParseBool(rec[8]); err != nil {
		return s, err
	}
	if s.Brace, err = strconv.ParseBool(rec[9]); err != nil {
		return s, err
	}
	return s, nil
}

// Recorder collects a Sample for every frame a player emits.
type Recorder struct {
	samples []Sample
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) OnFrame(fi anim.FrameInfo) error {
	s := Sample{Frame: fi.Index, Step: fi.Step, Alpha: fi.Alpha, Defined: true}
	if f := fi.Rotation; f != nil {
		s.Variant = f.Point.Variant.String()
		s.Theta = f.Point.Theta
		s.X, s.Y = f.Point.X, f.Point.Y
		s.Value = f.Point.Value
		s.Defined = f.Point.Defined
		s.Brace = f.Annotation != nil
	}
	r.samples = append(r.samples, s)
	return nil
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Values returns the value column of the rotation frames, in order.
func Values(samples []Sample) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Variant != "" {
			out = append(out, s.Value)
		}
	}
	return out
}
