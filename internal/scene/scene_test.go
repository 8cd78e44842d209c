package scene_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/frame"
	"github.com/san-kum/planeview/internal/geom"
	"github.com/san-kum/planeview/internal/scene"
)

var _ = Describe("PointColor", func() {
	DescribeTable("uses strict less-than on phi",
		func(phi float64, want interface{}) {
			Expect(scene.PointColor(phi)).To(Equal(want))
		},
		Entry("negative", -0.3, scene.Red),
		Entry("tiny negative", -1e-12, scene.Red),
		Entry("zero", 0.0, scene.Green),
		Entry("negative zero", math.Copysign(0, -1), scene.Green),
		Entry("positive", 2.5, scene.Green),
	)
})

var _ = Describe("Build", func() {
	var f frame.Frame

	BeforeEach(func() {
		var err error
		f, err = frame.Parse("0,0,1,1,0,0,2,1,1,2,-1")
		Expect(err).NotTo(HaveOccurred())
	})

	It("fixes the axis box and labels", func() {
		s := scene.Build(f)
		for i, label := range []string{"X", "Y", "Z"} {
			Expect(s.Axes[i].Label).To(Equal(label))
			Expect(s.Axes[i].Min).To(Equal(-2.0))
			Expect(s.Axes[i].Max).To(Equal(2.0))
		}
	})

	It("centres the patch on normal*offset", func() {
		s := scene.Build(f)
		Expect(s.Center).To(Equal(r3.Vec{Z: 1}))
		c := geom.Centroid(s.Patch.Corners[:])
		Expect(c.X).To(BeNumerically("~", 0, 1e-12))
		Expect(c.Y).To(BeNumerically("~", 0, 1e-12))
		Expect(c.Z).To(BeNumerically("~", 1, 1e-12))
	})

	It("styles the patch as a translucent blue with a black edge", func() {
		s := scene.Build(f)
		Expect(s.Patch.Fill).To(Equal(scene.Patch))
		Expect(s.Patch.FillAlpha).To(Equal(0.3))
		Expect(s.Patch.Edge).To(Equal(scene.Black))
	})

	It("colours the markers and the link", func() {
		s := scene.Build(f)
		Expect(s.P.Pos).To(Equal(r3.Vec{Z: 2}))
		Expect(s.P.Color).To(Equal(scene.Red))
		Expect(s.Q.Pos).To(Equal(r3.Vec{X: 1, Y: 1, Z: 2}))
		Expect(s.Q.Color).To(Equal(scene.White))
		Expect(s.Q.Size).To(BeNumerically("<", s.P.Size))
		Expect(s.Link.From).To(Equal(s.P.Pos))
		Expect(s.Link.To).To(Equal(s.Q.Pos))
		Expect(s.Link.Color).To(Equal(scene.Yellow))
	})

	It("titles the scene with phi to three decimals", func() {
		Expect(scene.Build(f).Title).To(Equal("phi=-1.000"))
		f.Phi = 0.12345
		Expect(scene.Build(f).Title).To(Equal("phi=0.123"))
	})
})
