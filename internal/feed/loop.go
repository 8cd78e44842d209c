package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/planeview/internal/frame"
	"github.com/san-kum/planeview/internal/log"
	"github.com/san-kum/planeview/internal/scene"
)

// DefaultPause is the yield after each presented frame.
const DefaultPause = time.Millisecond

// Surface presents a scene. Draw replaces whatever was shown before.
type Surface interface {
	Draw(s scene.Scene) error
}

// Stats counts what the loop has seen so far.
type Stats struct {
	Lines   int
	Frames  int
	Skipped int
}

// Decode turns one line into a scene. ok is false when the line must be
// skipped; err is non-nil only for fatal input.
func Decode(line string) (s scene.Scene, ok bool, err error) {
	f, err := frame.Parse(line)
	if errors.Is(err, frame.ErrFieldCount) {
		return scene.Scene{}, false, nil
	}
	if err != nil {
		return scene.Scene{}, false, err
	}
	return scene.Build(f), true, nil
}

// Loop reads lines and draws them on a Surface.
type Loop struct {
	surface Surface
	pause   time.Duration
	log     log.Logger
	stats   Stats
}

type Option func(*Loop)

// WithPause overrides DefaultPause. Zero disables the yield.
func WithPause(d time.Duration) Option { return func(l *Loop) { l.pause = d } }

func WithLogger(lg log.Logger) Option { return func(l *Loop) { l.log = lg } }

func New(surface Surface, opts ...Option) *Loop {
	l := &Loop{surface: surface, pause: DefaultPause, log: log.Discard()}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loop) Stats() Stats { return l.stats }

// Run consumes r until end of input, a fatal line, a surface error or ctx
// cancellation. End of input returns nil.
func (l *Loop) Run(ctx context.Context, r io.Reader) error {
	lines := NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := lines.Next()
		if err == io.EOF {
			l.log.Debugf("end of input after %d lines, %d frames", l.stats.Lines, l.stats.Frames)
			return nil
		}
		if err != nil {
			return fmt.Errorf("feed: read: %w", err)
		}
		l.stats.Lines++

		s, ok, err := Decode(line)
		if err != nil {
			return fmt.Errorf("feed: line %d: %w", l.stats.Lines, err)
		}
		if !ok {
			l.stats.Skipped++
			l.log.WithField("line", l.stats.Lines).Debugf("skipped record with wrong field count")
			continue
		}

		if err := l.surface.Draw(s); err != nil {
			return fmt.Errorf("feed: draw: %w", err)
		}
		l.stats.Frames++

		if err := l.yield(ctx); err != nil {
			return err
		}
	}
}

func (l *Loop) yield(ctx context.Context) error {
	if l.pause <= 0 {
		return nil
	}
	t := time.NewTimer(l.pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
