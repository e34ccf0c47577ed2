// Package client runs one game in a terminal: it reads keys, drives the
// simulation once per refresh tick and paints the field with a colored
// half-block canvas.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
)

const defaultFrameRate = 60

// Client handles rendering and input for a single terminal.
type Client struct {
	driver       *loop.Driver
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	field        config.FieldRules
	styles       styles
	logger       *log.Logger
	frameTime    time.Duration

	termWidth  int
	termHeight int
	prevPhase  loop.Phase
	needsClear bool
}

// ClientOptions configures the client. Zero values pick sensible defaults:
// classic rules, a time-seeded random source, the process terminal size and
// the default logger and a lipgloss renderer bound to the output.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Rules        config.Rules
	Rand         object.Rand
	Logger       *log.Logger
	Renderer     *lipgloss.Renderer
	FrameRate    int
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Rules == (config.Rules{}) {
		opts.Rules = config.Classic()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(w)
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = defaultFrameRate
	}

	driver, err := loop.NewDriver(opts.Rules, opts.Rand, loop.DriverOptions{Logger: opts.Logger})
	if err != nil {
		return nil, err
	}

	field := opts.Rules.Field
	return &Client{
		driver:       driver,
		canvas:       draw.NewScaledCanvas(1, 1, field.Width, field.Height),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: opts.TermSizeFunc,
		field:        field,
		styles:       newStyles(opts.Renderer),
		logger:       opts.Logger,
		frameTime:    time.Second / time.Duration(opts.FrameRate),
		needsClear:   true,
	}, nil
}

// Driver exposes the game driver, mainly for inspection.
func (c *Client) Driver() *loop.Driver {
	return c.driver
}

// Run plays games until the player quits, the input closes or ctx is done.
// Each ticker tick is one refresh signal.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)

	ticker := time.NewTicker(c.frameTime)
	defer ticker.Stop()

	for {
		start, err := c.waitForStart(ctx, ticker.C)
		if err != nil || !start {
			return ignoreCancel(err)
		}
		if err := c.begin(); err != nil {
			return err
		}

		err = c.driver.Run(ctx, ticker.C, c.playFrame)
		switch {
		case errors.Is(err, loop.ErrQuit):
			return nil
		case err != nil:
			return ignoreCancel(err)
		}
		c.logger.Debug("showing game over screen", "score", c.driver.FinalScore())
	}
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// waitForStart shows the title or game over screen until the player asks
// for a game (true) or quits (false).
func (c *Client) waitForStart(ctx context.Context, tick <-chan time.Time) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-tick:
		}

		in := input.ReadInput(c.inputStream)
		if in.Quit {
			return false, nil
		}
		if in.Start {
			return true, nil
		}
		if err := c.drawFrame(); err != nil {
			return false, err
		}
	}
}

func (c *Client) begin() error {
	c.inputStream.Reset()
	if c.driver.Phase() == loop.PhaseOver {
		return c.driver.Restart()
	}
	return c.driver.Start()
}

// playFrame runs after every step. Steering read here is consumed at the
// start of the next step.
func (c *Client) playFrame(_ *loop.State) error {
	in := input.ReadInput(c.inputStream)
	if in.Quit {
		return loop.ErrQuit
	}
	c.driver.Steer(in.Direction())
	return c.drawFrame()
}

// updateScreen refits the canvas when the terminal was resized.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		c.logger.Debug("terminal size unavailable", "err", err)
		return
	}
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.termWidth, c.termHeight = termWidth, termHeight

	width, height, offsetCol, offsetRow := fitCanvas(termWidth, termHeight, c.field)
	c.canvas.Resize(width, height)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	c.needsClear = true
}

func (c *Client) drawFrame() error {
	c.updateScreen()

	phase := c.driver.Phase()
	if phase != c.prevPhase || c.needsClear {
		draw.ClearScreen(c.chunkWriter)
		c.prevPhase = phase
		c.needsClear = false
	}

	c.canvas.Clear()
	if phase != loop.PhaseIdle {
		c.driver.State().Draw(c.canvas)
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	switch phase {
	case loop.PhaseIdle:
		c.drawStartScreen()
	case loop.PhaseRunning:
		c.drawPlayingHUD()
	case loop.PhaseOver:
		c.drawPlayingHUD()
		c.drawGameOverScreen()
	}

	if err := c.chunkWriter.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
