package rotation_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/scene"
	"github.com/san-kum/trigsim/internal/theme"
	"github.com/san-kum/trigsim/internal/trig"
)

func newScene(initial float64) *scene.Context {
	m, err := geom.NewMapper(geom.Vec{X: -1, Y: 0.5}, 2.5)
	Expect(err).NotTo(HaveOccurred())
	ctx, err := scene.New(scene.Options{Mapper: m, InitialAngle: initial, Buff: 0.2, Theme: theme.ThemeClassic})
	Expect(err).NotTo(HaveOccurred())
	return ctx
}

func startRotation(ctx *scene.Context, variant string, clockwise bool) *rotation.Sequencer {
	req, err := rotation.NewRequest(rotation.RequestConfig{
		Variant:   variant,
		Clockwise: clockwise,
		Repeat:    1,
		ShowBrace: true,
	})
	Expect(err).NotTo(HaveOccurred())
	seq := rotation.NewSequencer(ctx, req)
	Expect(seq.Begin()).To(Succeed())
	return seq
}

// copySlots deep-copies the owned shapes so later frames cannot alias them.
func copySlots(ctx *scene.Context, v trig.Variant) []scene.Shape {
	s, ok := ctx.Slots(v)
	Expect(ok).To(BeTrue())
	var out []scene.Shape
	for _, sh := range s.Shapes() {
		out = append(out, sh.Clone())
	}
	return out
}

func alphaFor(theta float64) float64 { return theta / (2 * math.Pi) }

var _ = Describe("Sequencer", func() {
	Describe("first frame", func() {
		DescribeTable("never shows a brace",
			func(variant string) {
				ctx := newScene(math.Pi / 6)
				seq := startRotation(ctx, variant, false)
				frame, err := seq.Step(0)
				Expect(err).NotTo(HaveOccurred())
				Expect(frame.Annotation).To(BeNil())
				Expect(ctx.Annotation()).To(BeNil())
			},
			Entry("sine", "sine"),
			Entry("cosine", "cosine"),
			Entry("tangent", "tangent"),
			Entry("cotangent", "cotangent"),
			Entry("secant", "secant"),
			Entry("cosecant", "cosecant"),
		)
	})

	Describe("discontinuity frames", func() {
		DescribeTable("leave owned shapes exactly as the previous frame left them",
			func(variant string, before, pole float64) {
				ctx := newScene(0)
				seq := startRotation(ctx, variant, false)
				v := seq.Request().Variant()

				_, err := seq.Step(alphaFor(before))
				Expect(err).NotTo(HaveOccurred())
				prev := copySlots(ctx, v)

				frame, err := seq.Step(alphaFor(pole))
				Expect(err).NotTo(HaveOccurred())
				Expect(frame.Point.Defined).To(BeFalse())
				Expect(frame.Updated).To(BeFalse())
				Expect(frame.Annotation).To(BeNil())
				Expect(copySlots(ctx, v)).To(Equal(prev))
			},
			Entry("tangent at pi/2", "tangent", math.Pi/2-0.2, math.Pi/2+0.5e-3),
			Entry("tangent at 3pi/2", "tangent", 3*math.Pi/2-0.2, 3*math.Pi/2-0.9e-3),
			Entry("secant at pi/2", "secant", math.Pi/2-0.2, math.Pi/2+0.5e-3),
			Entry("cotangent at pi", "cotangent", math.Pi-0.2, math.Pi+0.4e-3),
			Entry("cosecant at pi", "cosecant", math.Pi-0.2, math.Pi-0.4e-3),
			Entry("cosecant at 2pi", "cosecant", 2*math.Pi-0.2, 2*math.Pi),
		)

		It("still moves the base radius", func() {
			ctx := newScene(0)
			seq := startRotation(ctx, "secant", false)
			theta := math.Pi/2 + 0.5e-3
			_, err := seq.Step(alphaFor(theta))
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.Angle()).To(BeNumerically("~", theta, 1e-12))
		})
	})

	Describe("sine and cosine brace sides", func() {
		m, _ := geom.NewMapper(geom.Origin, 1)
		DescribeTable("depend on one coordinate only",
			func(theta float64, sine, cosine geom.Vec) {
				fp := trig.Compute(theta, trig.Sine, m)
				spec := rotation.Describe(trig.Sine).Annotate(0.5, fp, 1, 0.2)
				Expect(spec).NotTo(BeNil())
				Expect(spec.Direction.Equal(sine, 1e-9)).To(BeTrue(), "sine direction %v", spec.Direction)

				fp = trig.Compute(theta, trig.Cosine, m)
				spec = rotation.Describe(trig.Cosine).Annotate(0.5, fp, 1, 0.2)
				Expect(spec).NotTo(BeNil())
				Expect(spec.Direction.Equal(cosine, 1e-9)).To(BeTrue(), "cosine direction %v", spec.Direction)
			},
			Entry("quadrant I", math.Pi/6, geom.Right, geom.Up),
			Entry("quadrant II", 2*math.Pi/3, geom.Left, geom.Up),
			Entry("quadrant III", 7*math.Pi/6, geom.Left, geom.Down),
			Entry("quadrant IV", 5*math.Pi/3, geom.Right, geom.Down),
		)
	})

	Describe("a full counterclockwise sine rotation", func() {
		It("visits the axis points in order", func() {
			ctx := newScene(0)
			seq := startRotation(ctx, "sine", false)
			want := []geom.Vec{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}}
			for i, alpha := range []float64{0, 0.25, 0.5, 0.75, 1} {
				frame, err := seq.Step(alpha)
				Expect(err).NotTo(HaveOccurred())
				got := geom.Vec{X: frame.Point.X, Y: frame.Point.Y}
				Expect(got.Equal(want[i], 1e-9)).To(BeTrue(), "alpha %.2f: %v", alpha, got)
			}
			Expect(seq.Finish()).To(Succeed())
		})

		It("runs the other way when clockwise", func() {
			ctx := newScene(0)
			seq := startRotation(ctx, "sine", true)
			frame, err := seq.Step(0.25)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Point.Y).To(BeNumerically("~", -1, 1e-9))
		})
	})

	Describe("lifecycle", func() {
		It("rejects calls out of order", func() {
			ctx := newScene(0)
			req, err := rotation.NewRequest(rotation.RequestConfig{Variant: "cos", Repeat: 2, RemoveShapes: true})
			Expect(err).NotTo(HaveOccurred())
			seq := rotation.NewSequencer(ctx, req)

			Expect(seq.Interpolate(0.5)).To(MatchError(rotation.ErrNotStarted))
			Expect(seq.Finish()).To(MatchError(rotation.ErrNotStarted))
			Expect(seq.Begin()).To(Succeed())
			Expect(seq.State()).To(Equal(rotation.Running))
			Expect(seq.Begin()).To(MatchError(rotation.ErrAlreadyStarted))
			Expect(seq.Finish()).To(Succeed())
			Expect(seq.Interpolate(0.5)).To(MatchError(rotation.ErrFinished))
			Expect(seq.State()).To(Equal(rotation.Finished))
		})

		It("removes shapes and the brace on finish when asked", func() {
			ctx := newScene(0)
			req, _ := rotation.NewRequest(rotation.RequestConfig{Variant: "tan", Repeat: 1, ShowBrace: true, RemoveShapes: true})
			seq := rotation.NewSequencer(ctx, req)
			Expect(seq.Begin()).To(Succeed())
			_, err := seq.Step(alphaFor(math.Pi / 4))
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.Annotation()).NotTo(BeNil())

			Expect(seq.Finish()).To(Succeed())
			_, ok := ctx.Slots(trig.Tangent)
			Expect(ok).To(BeFalse())
			Expect(ctx.Annotation()).To(BeNil())
		})

		It("keeps shapes on finish by default", func() {
			ctx := newScene(0)
			seq := startRotation(ctx, "cot", false)
			Expect(seq.Finish()).To(Succeed())
			_, ok := ctx.Slots(trig.Cotangent)
			Expect(ok).To(BeTrue())
		})

		It("refuses a second rotation of the same variant on one context", func() {
			ctx := newScene(0)
			startRotation(ctx, "sine", false)
			req, _ := rotation.NewRequest(rotation.RequestConfig{Variant: "sine", Repeat: 1})
			Expect(rotation.NewSequencer(ctx, req).Begin()).To(MatchError(scene.ErrSlotsInUse))
		})

		It("clamps alpha", func() {
			ctx := newScene(0.3)
			seq := startRotation(ctx, "sine", false)
			frame, err := seq.Step(1.7)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Alpha).To(Equal(1.0))
			frame, err = seq.Step(-2)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Alpha).To(Equal(0.0))
			Expect(frame.Point.Theta).To(Equal(0.3))
		})
	})
})

var _ = Describe("NewRequest", func() {
	DescribeTable("fails fast on bad input",
		func(cfg rotation.RequestConfig, want error) {
			_, err := rotation.NewRequest(cfg)
			Expect(err).To(MatchError(want))
		},
		Entry("unknown variant", rotation.RequestConfig{Variant: "versine", Repeat: 1}, rotation.ErrUnknownVariant),
		Entry("empty variant", rotation.RequestConfig{Repeat: 1}, rotation.ErrUnknownVariant),
		Entry("zero repeat", rotation.RequestConfig{Variant: "sine"}, rotation.ErrInvalidRepeat),
		Entry("negative repeat", rotation.RequestConfig{Variant: "sine", Repeat: -3}, rotation.ErrInvalidRepeat),
		Entry("negative run time", rotation.RequestConfig{Variant: "sine", Repeat: 1, RunTime: -1}, rotation.ErrInvalidRunTime),
	)

	It("accepts short names", func() {
		req, err := rotation.NewRequest(rotation.RequestConfig{Variant: "CSC", Repeat: 3, Clockwise: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Variant()).To(Equal(trig.Cosecant))
		Expect(req.Sweep()).To(BeNumerically("~", -6*math.Pi, 1e-12))
	})
})
