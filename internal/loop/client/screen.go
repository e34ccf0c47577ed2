package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/skyraid/internal/config"
)

// maxTermHeight caps the canvas height on very tall terminals.
const maxTermHeight = 60

// fitCanvas picks the largest canvas that keeps the field's aspect ratio on
// square sub-pixels and centers it in the terminal.
func fitCanvas(termWidth, termHeight int, field config.FieldRules) (width, height, offsetCol, offsetRow int) {
	height = min(termHeight, maxTermHeight)
	width = int(math.Round(float64(height) * 2 * field.Width / field.Height))
	if width > termWidth {
		width = termWidth
		height = int(math.Round(float64(width) * field.Height / (2 * field.Width)))
	}
	width, height = max(width, 1), max(height, 1)
	offsetCol = max((termWidth-width)/2, 0)
	offsetRow = max((termHeight-height)/2, 0)
	return width, height, offsetCol, offsetRow
}

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	text     lipgloss.Style
	prompt   lipgloss.Style
	hud      lipgloss.Style
	danger   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe600")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1e50ff")).
			Padding(0, 2),
		subtitle: r.NewStyle().Italic(true).Foreground(lipgloss.Color("#a0a0a0")),
		text:     r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		prompt:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2adf4a")),
		hud:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		danger:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff2a2a")),
	}
}

// writeCentered writes a possibly multi-line block centered on the canvas,
// starting at row.
func (c *Client) writeCentered(row int, block string) int {
	center := c.canvas.TerminalWidth()/2 + 1
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		col := max(center-lipgloss.Width(line)/2, 1-c.canvas.OffsetCol())
		c.chunkWriter.WriteAt(col, row+i, line)
	}
	return row + len(lines)
}

func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

func (c *Client) drawStartScreen() {
	s := c.styles
	row := max(c.canvas.TerminalHeight()/2-7, 1)

	row = c.writeCentered(row, s.title.Render("S K Y R A I D"))
	row = c.writeCentered(row+1, s.subtitle.Render("shoot the red, catch the green"))

	controls := []string{
		"← → / A D . . . Steer",
		"Firing  . . automatic",
		"SPACE . . . . . Start",
		"Q . . . . . . .  Quit",
	}
	row++
	for _, line := range controls {
		row = c.writeCentered(row, s.text.Render(line))
	}

	if blinkOn() {
		c.writeCentered(row+1, s.prompt.Render(">> Press SPACE to start <<"))
	}
}

// drawPlayingHUD shows health at the top left and the floored score at the
// top right. Fixed widths overwrite the previous frame's digits.
func (c *Client) drawPlayingHUD() {
	state := c.driver.State()

	healthStyle := c.styles.hud
	if state.Craft.Health <= 1 {
		healthStyle = c.styles.danger
	}
	health := healthStyle.Render(fmt.Sprintf("Health: %-5.2f", max(state.Craft.Health, 0)))
	c.chunkWriter.WriteAt(2, 1, health)

	score := c.styles.hud.Render(fmt.Sprintf("Score: %d", state.DisplayScore()))
	col := max(c.canvas.TerminalWidth()-lipgloss.Width(score), 1)
	c.chunkWriter.WriteAt(col, 1, score)
}

func (c *Client) drawGameOverScreen() {
	s := c.styles
	state := c.driver.State()
	row := max(c.canvas.TerminalHeight()/2-4, 1)

	row = c.writeCentered(row, s.title.BorderForeground(lipgloss.Color("#ff2a2a")).Render("G A M E   O V E R"))
	row = c.writeCentered(row+1, s.text.Render(fmt.Sprintf("Final score: %d", c.driver.FinalScore())))
	row = c.writeCentered(row, s.subtitle.Render(fmt.Sprintf("enemies destroyed: %d", state.Kills)))

	if blinkOn() {
		c.writeCentered(row+1, s.prompt.Render(">> SPACE to restart, Q to quit <<"))
	}
}
