//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"mazegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	doneColor   = color.RGBA{R: 120, G: 220, B: 140, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the maze view. Controls
// with +/- buttons come first, the remaining parameters are listed read-only
// below them.
type HUD struct {
	sim          core.Sim
	width        int
	panel        *ebiten.Image
	pixel        *ebiten.Image
	panelOffsetX int
	title        string

	snapshot core.ParameterSnapshot
	controls []controlState
	readouts []core.Parameter

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons. panelOffsetX is the panel's left edge in screen space.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.title = buildTitle(h.sim)
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refresh()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawReadouts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	controlled := make(map[string]bool, len(h.controls))
	for i := range h.controls {
		state := &h.controls[i]
		controlled[state.control.Key] = true
		state.hasValue = false
		state.value = "--"

		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			if v, err := strconv.Atoi(param.Value); err == nil {
				state.intValue, state.floatValue = v, float64(v)
				state.value = strconv.Itoa(v)
				state.hasValue = true
			}
		case core.ParamTypeFloat:
			if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
				state.floatValue = v
				state.value = formatFloat(state.control, v)
				state.hasValue = true
			}
		}
	}

	h.readouts = h.readouts[:0]
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if !controlled[p.Key] {
				h.readouts = append(h.readouts, p)
			}
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case p.In(state.minusRect):
			h.adjust(state, -1)
			return
		case p.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// target computes the value one step away in direction dir, clamped to the
// control's bounds. ok is false when the value cannot move.
func (h *HUD) target(state *controlState, dir int) (float64, bool) {
	if !state.hasValue || dir == 0 {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	v := state.floatValue + float64(dir)*step
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	if math.Abs(v-state.floatValue) < 1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) adjust(state *controlState, dir int) {
	v, ok := h.target(state, dir)
	if !ok {
		return
	}
	if state.control.Type == core.ParamTypeInt {
		n := int(math.Round(v))
		if h.intSetter.SetIntParameter(state.control.Key, n) {
			state.intValue, state.floatValue = n, float64(n)
			state.value = strconv.Itoa(n)
		}
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, v) {
		state.floatValue = v
		state.value = formatFloat(state.control, v)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, mutedColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, y, valueColor)

		_, minusOK := h.target(state, -1)
		_, plusOK := h.target(state, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}
}

func (h *HUD) drawReadouts() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + readoutGap
	for _, p := range h.readouts {
		value := p.Value
		col := labelColor
		if p.Type == core.ParamTypeBool {
			if value == "true" {
				value, col = "yes", doneColor
			} else {
				value, col = "no", mutedColor
			}
		}
		text.Draw(h.panel, p.Label, face, panelPadding, y, mutedColor)
		text.Draw(h.panel, value, face, h.width-panelPadding-text.BoundString(face, value).Dx(), y, col)
		y += readoutHeight
	}
	y += readoutGap
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += readoutHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg, fg = buttonOff, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Maze"
	}
	return fmt.Sprintf("Maze (%s)", sim.Name())
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	switch step := ctrl.Step; {
	case step >= 1:
		return strconv.FormatFloat(value, 'f', 0, 64)
	case step >= 0.1:
		return strconv.FormatFloat(value, 'f', 1, 64)
	case step >= 0.01:
		return strconv.FormatFloat(value, 'f', 2, 64)
	default:
		return strconv.FormatFloat(value, 'f', 3, 64)
	}
}

var keyHelp = []string{
	"Space pause  Enter run",
	"N step  R reset  S reseed",
	"A algorithm  1 trail",
	"+/- speed  Q quit",
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	readoutHeight  = 18
	readoutGap     = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
