package stream_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/config"
	"github.com/san-kum/planeview/internal/feed"
	"github.com/san-kum/planeview/internal/frame"
	"github.com/san-kum/planeview/internal/log"
	"github.com/san-kum/planeview/internal/scene"
	"github.com/san-kum/planeview/internal/stream"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

type counter struct{ scenes []scene.Scene }

func (c *counter) Draw(s scene.Scene) error {
	c.scenes = append(c.scenes, s)
	return nil
}

var _ = Describe("Producer", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Steps = 25
		cfg.Interval = 0
	})

	It("starts at the path origin", func() {
		p := stream.New(cfg, log.Discard())
		f := p.Sample(0)
		Expect(f.P).To(Equal(r3.Vec{X: 0, Y: -0.5, Z: 0.5}))
		Expect(f.Normal).To(Equal(r3.Vec{Y: 1}))
		Expect(f.Offset).To(Equal(2.0))
		Expect(f.Phi).To(BeNumerically("~", -2.5, 1e-12))
		Expect(f.Q).To(Equal(r3.Vec{X: 0, Y: 2, Z: 0.5}))
	})

	It("reports projections that lie on the plane", func() {
		cfg.Plane.Normal = [3]float64{1, 2, -2}
		cfg.Plane.Offset = 0.3
		p := stream.New(cfg, log.Discard())
		for i := 0; i < cfg.Steps; i++ {
			f := p.Sample(i)
			Expect(r3.Norm(f.Normal)).To(BeNumerically("~", 1, 1e-12))
			Expect(r3.Dot(f.Normal, f.Q) - f.Offset).To(BeNumerically("~", 0, 1e-12))
			Expect(r3.Dot(f.Normal, f.P) - f.Offset).To(BeNumerically("~", f.Phi, 1e-12))
			d := r3.Sub(f.P, f.Q)
			Expect(r3.Norm(d)).To(BeNumerically("~", abs(f.Phi), 1e-12))
		}
	})

	It("writes one parseable line per step", func() {
		var buf bytes.Buffer
		n, err := stream.New(cfg, log.Discard()).Run(context.Background(), &buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(25))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(25))
		for _, l := range lines {
			_, err := frame.Parse(l)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("feeds the render loop end to end", func() {
		var buf bytes.Buffer
		_, err := stream.New(cfg, log.Discard()).Run(context.Background(), &buf)
		Expect(err).NotTo(HaveOccurred())

		c := &counter{}
		Expect(feed.New(c, feed.WithPause(0)).Run(context.Background(), &buf)).To(Succeed())
		Expect(c.scenes).To(HaveLen(25))
		for _, s := range c.scenes {
			Expect(s.P.Color).To(Equal(scene.Red))
		}
	})

	It("flips marker colour when the point crosses the plane", func() {
		cfg = config.GetPreset("crossing")
		cfg.Interval = 0
		p := stream.New(cfg, log.Discard())
		colors := map[string]bool{}
		for i := 0; i < cfg.Steps; i++ {
			colors[scene.Build(p.Sample(i)).P.Color.Hex()] = true
		}
		Expect(colors).To(HaveKey(scene.Red.Hex()))
		Expect(colors).To(HaveKey(scene.Green.Hex()))
	})

	It("stops when the context is cancelled", func() {
		cfg.Steps = 0
		cfg.Interval = time.Millisecond
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		var buf bytes.Buffer
		n, err := stream.New(cfg, log.Discard()).Run(ctx, &buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeNumerically(">", 0))
		Expect(strings.Count(buf.String(), "\n")).To(Equal(n))
	})

	It("reports write failures", func() {
		_, err := stream.New(cfg, log.Discard()).Run(context.Background(), failWriter{})
		Expect(err).To(MatchError(ContainSubstring("pipe closed")))
	})
})

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
