// Package stream produces a synthetic planeview feed: a point moving on a
// fixed path is queried against a plane environment and every sample is
// written as one feed line.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/config"
	"github.com/san-kum/planeview/internal/frame"
	"github.com/san-kum/planeview/internal/geom"
	"github.com/san-kum/planeview/internal/log"
)

type Producer struct {
	plane    geom.Plane
	path     config.PathConfig
	steps    int
	dt       float64
	interval time.Duration
	log      log.Logger
}

func New(cfg *config.Config, lg log.Logger) *Producer {
	n := cfg.Plane.Normal
	return &Producer{
		plane:    geom.NewPlane(r3.Vec{X: n[0], Y: n[1], Z: n[2]}, cfg.Plane.Offset),
		path:     cfg.Path,
		steps:    cfg.Steps,
		dt:       cfg.Dt,
		interval: cfg.Interval,
		log:      lg,
	}
}

// Point is the query point at time t.
func (p *Producer) Point(t float64) r3.Vec {
	return r3.Vec{
		X: p.path.XAmp * math.Sin(t),
		Y: p.path.YBase + p.path.YAmp*math.Sin(p.path.YFreq*t),
		Z: p.path.ZAmp * math.Cos(t),
	}
}

// Sample builds the i-th frame: the plane, the query point, its projection
// and its signed distance.
func (p *Producer) Sample(i int) frame.Frame {
	x := p.Point(float64(i) * p.dt)
	q := p.plane.Query(x)
	return frame.Frame{
		Normal: q.Grad,
		Offset: p.plane.B,
		P:      x,
		Q:      q.Proj,
		Phi:    q.Phi,
	}
}

// Run writes samples to w until the configured step count is reached or
// ctx is cancelled, pausing between lines. It returns the number of lines
// written. Cancellation is not an error.
func (p *Producer) Run(ctx context.Context, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	n := 0
	for i := 0; p.steps == 0 || i < p.steps; i++ {
		if ctx.Err() != nil {
			break
		}
		if _, err := fmt.Fprintln(bw, p.Sample(i).Format()); err != nil {
			return n, fmt.Errorf("stream: write: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return n, fmt.Errorf("stream: write: %w", err)
		}
		n++

		if p.interval <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(p.interval)
		} else {
			timer.Reset(p.interval)
		}
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	p.log.Debugf("stream: wrote %d samples", n)
	return n, nil
}
