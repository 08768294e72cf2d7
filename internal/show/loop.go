package show

import (
	"context"
	"image"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const DfltFPS = 30

// FrameFunc produces the frame to display at a given elapsed time.
type FrameFunc func(elapsed time.Duration, bounds image.Rectangle) image.Image

// Looper paces frame production and handles shutdown signals. Start blocks
// until the loop ends.
type Looper struct {
	quit     chan bool
	ctx      context.Context
	cancel   context.CancelFunc
	wg       *sync.WaitGroup
	c        chan os.Signal
	start    time.Time
	frame    FrameFunc
	renderer *Renderer
	fps      int
	log      zerolog.Logger
}

func NewLooper(r *Renderer, f FrameFunc, fps int, log zerolog.Logger) *Looper {
	if fps <= 0 {
		fps = DfltFPS
	}
	return &Looper{
		renderer: r,
		frame:    f,
		fps:      fps,
		log:      log,
	}
}

func (l *Looper) refresh() {
	delta := 1000 * time.Millisecond / time.Duration(l.fps)
	ticker := time.NewTicker(delta)

	fd := float32(delta)

	for {
		select {
		case <-ticker.C:
			t := time.Now()
			img := l.frame(t.Sub(l.start), l.renderer.Bounds())
			if err := l.renderer.Render(img); err != nil {
				l.log.Error().Err(err).Msg("render failed")
			}

			delta = time.Duration(fd) - time.Since(t)
			if delta.Milliseconds() > 0 {
				ticker.Stop()
				ticker = time.NewTicker(delta)
			}

		case <-l.quit:
			ticker.Stop()
			l.cancel()
			l.wg.Done()
			return

		case sig := <-l.c:
			l.log.Info().Str("signal", sig.String()).Msg("aborting")
			ticker.Stop()
			l.cancel()
			l.wg.Done()
			return

		case <-l.ctx.Done():
			ticker.Stop()
			l.cancel()
			l.wg.Done()
			return
		}
	}
}

// Start runs the loop until Stop, SIGINT or context cancellation.
func (l *Looper) Start() {
	l.quit = make(chan bool)

	l.ctx = context.Background()
	l.ctx, l.cancel = context.WithCancel(l.ctx)

	l.wg = &sync.WaitGroup{}
	l.wg.Add(1)

	l.c = make(chan os.Signal, 1)
	signal.Notify(l.c, os.Interrupt)
	defer func() {
		signal.Stop(l.c)
		l.cancel()
	}()

	l.start = time.Now()
	go l.refresh()

	l.wg.Wait()
}

// Stop ends a running loop.
func (l *Looper) Stop() {
	l.quit <- true
}
