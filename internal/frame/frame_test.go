package frame_test

import (
	"errors"
	"math"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/frame"
)

var _ = Describe("Parse", func() {
	It("decodes eleven values in field order", func() {
		f, err := frame.Parse("0,1,0,0.5,0,0,0,1,0,0,-0.3")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Normal).To(Equal(r3.Vec{X: 0, Y: 1, Z: 0}))
		Expect(f.Offset).To(Equal(0.5))
		Expect(f.P).To(Equal(r3.Vec{}))
		Expect(f.Q).To(Equal(r3.Vec{X: 1}))
		Expect(f.Phi).To(Equal(-0.3))
	})

	It("trims whitespace around the line and each token", func() {
		f, err := frame.Parse("  1 , 0,0 ,\t2,1,2,3,4,5,6, 0.25 \r\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Normal).To(Equal(r3.Vec{X: 1}))
		Expect(f.Offset).To(Equal(2.0))
		Expect(f.P).To(Equal(r3.Vec{X: 1, Y: 2, Z: 3}))
		Expect(f.Q).To(Equal(r3.Vec{X: 4, Y: 5, Z: 6}))
		Expect(f.Phi).To(Equal(0.25))
	})

	It("accepts exponent notation", func() {
		f, err := frame.Parse("0,0,1,1e-3,0,0,0,0,0,0,-2.5E+1")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Offset).To(Equal(0.001))
		Expect(f.Phi).To(Equal(-25.0))
	})

	It("saturates out-of-range magnitudes instead of failing", func() {
		f, err := frame.Parse("0,0,1,1e400,0,0,-1e400,0,0,1e-400,1e400")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(f.Offset, 1)).To(BeTrue())
		Expect(math.IsInf(f.P.Z, -1)).To(BeTrue())
		Expect(f.Q.Z).To(Equal(0.0))
		Expect(math.IsInf(f.Phi, 1)).To(BeTrue())
	})

	It("accepts inf and nan spellings", func() {
		f, err := frame.Parse("0,0,1,1,0,0,0,0,0,nan,-inf")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(f.Q.Z)).To(BeTrue())
		Expect(math.IsInf(f.Phi, -1)).To(BeTrue())
	})

	DescribeTable("rejects numeric lines with the wrong field count",
		func(line string) {
			_, err := frame.Parse(line)
			Expect(err).To(MatchError(frame.ErrFieldCount))
		},
		Entry("ten fields", "0,1,0,0.5,0,0,0,1,0,0"),
		Entry("twelve fields", "0,1,0,0.5,0,0,0,1,0,0,-0.3,7"),
		Entry("five fields", "1,2,3,4,5"),
		Entry("one field", "42"),
	)

	DescribeTable("reports non-numeric tokens as NumberError",
		func(line string, index int) {
			_, err := frame.Parse(line)
			var numErr *frame.NumberError
			Expect(errors.As(err, &numErr)).To(BeTrue())
			Expect(numErr.Index).To(Equal(index))
			Expect(errors.Is(err, strconv.ErrSyntax)).To(BeTrue())
			Expect(errors.Is(err, frame.ErrFieldCount)).To(BeFalse())
		},
		Entry("word in an eleven-field line", "0,1,0,0.5,0,0,0,x,0,0,-0.3", 7),
		Entry("word in a short line", "1,2,oops", 2),
		Entry("empty line", "", 0),
		Entry("trailing comma", "0,1,0,0.5,0,0,0,1,0,0,", 10),
		Entry("hex float", "0,1,0,0.5,0,0,0,1,0,0,0x1p-2", 10),
		Entry("signed upper-case hex float", "0,1,0,-0X1P0,0,0,0,1,0,0,0.5", 3),
	)

	It("names the offending field in the error message", func() {
		_, err := frame.Parse("0,1,0,0.5,0,0,0,1,0,0,abc")
		Expect(err).To(MatchError(ContainSubstring("phi")))
		Expect(err).To(MatchError(ContainSubstring(`"abc"`)))
	})
})

var _ = Describe("Frame", func() {
	It("round-trips through Format", func() {
		in := frame.Frame{
			Normal: r3.Vec{Z: 1},
			Offset: 1,
			P:      r3.Vec{Z: 2},
			Q:      r3.Vec{X: 1, Y: 1, Z: 2},
			Phi:    -1,
		}
		Expect(in.Format()).To(Equal("0,0,1,1,0,0,2,1,1,2,-1"))
		out, err := frame.Parse(in.Format())
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("returns values in feed order", func() {
		vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
		Expect(frame.FromValues(vals).Values()).To(Equal(vals))
	})

	It("names fields", func() {
		Expect(frame.FieldName(0)).To(Equal("nx"))
		Expect(frame.FieldName(3)).To(Equal("b"))
		Expect(frame.FieldName(10)).To(Equal("phi"))
		Expect(frame.FieldName(11)).To(Equal("extra"))
	})
})
