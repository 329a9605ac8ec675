package anim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RateFunc maps linear progress in [0, 1] to eased progress. Every rate
// fixes both ends and never decreases.
type RateFunc func(t float64) float64

func linear(t float64) float64 { return t }

func smooth(t float64) float64 { return t * t * (3 - 2*t) }

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

var rates = map[string]RateFunc{
	"linear":            linear,
	"smooth":            smooth,
	"ease-in-out-cubic": easeInOutCubic,
	"ease-out-cubic":    easeOutCubic,
}

// ParseRate looks a rate up by name. The empty name is linear.
func ParseRate(name string) (RateFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return linear, nil
	}
	r, ok := rates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRate, name)
	}
	return r, nil
}

// RateNames lists the known rates.
func RateNames() []string {
	names := make([]string, 0, len(rates))
	for n := range rates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
