package pad

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"boldkey/internal/i18n"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// padView lays out one frame of the scratchpad.
type padView struct {
	cfg    Config
	th     *material.Theme
	editor *widget.Editor
	status string

	copyBtn, clearBtn, closeBtn *widget.Clickable
}

func (v padView) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, v.cfg.BGColor, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(v.titleRow),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, v.editorPanel),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return v.label(gtx, v.status, 12, v.cfg.TextDimColor, font.Normal)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(v.buttonRow),
		)
	})
}

func (v padView) titleRow(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(v.badge),
		layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.label(gtx, i18n.T("pad_title"), 18, v.cfg.TextColor, font.Medium)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			// Transparent background; the cross turns red on hover.
			return v.button(gtx, v.closeBtn, color.NRGBA{}, 4, func(gtx layout.Context) layout.Dimensions {
				col := v.cfg.TextDimColor
				if v.closeBtn.Hovered() {
					col = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
				}
				return drawCross(gtx, col)
			})
		}),
	)
}

func (v padView) buttonRow(gtx layout.Context) layout.Dimensions {
	action := func(btn *widget.Clickable, bg color.NRGBA, key string) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return v.button(gtx, btn, bg, 8, func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{
					Top: unit.Dp(10), Bottom: unit.Dp(10),
					Left: unit.Dp(12), Right: unit.Dp(12),
				}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return v.label(gtx, i18n.T(key), 14, white, font.Medium)
					})
				})
			})
		}
	}
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEvenly}.Layout(gtx,
		layout.Flexed(1, action(v.copyBtn, v.cfg.AccentColor, "pad_copy")),
		layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
		layout.Flexed(1, action(v.clearBtn, v.cfg.PanelColor, "pad_clear")),
	)
}

// button draws content over a rounded background that darkens on hover.
func (v padView) button(gtx layout.Context, btn *widget.Clickable, bg color.NRGBA, radius unit.Dp, content layout.Widget) layout.Dimensions {
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		macro := op.Record(gtx.Ops)
		dims := content(gtx)
		call := macro.Stop()

		if btn.Hovered() {
			bg = shade(bg, 0.85)
		}
		if bg.A > 0 {
			fillRounded(gtx, bg, dims.Size, radius)
		}
		call.Add(gtx.Ops)
		return dims
	})
}

func (v padView) editorPanel(gtx layout.Context) layout.Dimensions {
	fillRounded(gtx, v.cfg.PanelColor, gtx.Constraints.Max, 10)

	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		ed := material.Editor(v.th, v.editor, i18n.T("pad_hint"))
		ed.TextSize = unit.Sp(16)
		ed.Color = v.cfg.TextColor
		ed.HintColor = v.cfg.TextDimColor
		return ed.Layout(gtx)
	})
}

// badge draws the accent square with a bold "B".
func (v padView) badge(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Dp(unit.Dp(22)), gtx.Dp(unit.Dp(22)))
	fillRounded(gtx, v.cfg.AccentColor, size, 5)

	gtx.Constraints = layout.Exact(size)
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return v.label(gtx, "B", 14, white, font.Bold)
	})
	return layout.Dimensions{Size: size}
}

func (v padView) label(gtx layout.Context, text string, size unit.Sp, col color.NRGBA, weight font.Weight) layout.Dimensions {
	lbl := material.Label(v.th, size, text)
	lbl.Color = col
	lbl.Font.Weight = weight
	return lbl.Layout(gtx)
}

func drawCross(gtx layout.Context, col color.NRGBA) layout.Dimensions {
	size := gtx.Dp(unit.Dp(24))
	s := float32(size)
	m := s * 0.25
	for _, line := range [][2]f32.Point{
		{f32.Pt(m, m), f32.Pt(s-m, s-m)},
		{f32.Pt(s-m, m), f32.Pt(m, s-m)},
	} {
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(line[0])
		path.LineTo(line[1])
		paint.FillShape(gtx.Ops, col, clip.Stroke{
			Path:  path.End(),
			Width: float32(gtx.Dp(unit.Dp(2))),
		}.Op())
	}
	return layout.Dimensions{Size: image.Pt(size, size)}
}

func fillRounded(gtx layout.Context, col color.NRGBA, size image.Point, radius unit.Dp) {
	rr := gtx.Dp(radius)
	rect := clip.RRect{
		Rect: image.Rectangle{Max: size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, col, rect.Op(gtx.Ops))
}

// shade darkens col by factor, keeping alpha.
func shade(col color.NRGBA, factor float32) color.NRGBA {
	return color.NRGBA{
		R: uint8(float32(col.R) * factor),
		G: uint8(float32(col.G) * factor),
		B: uint8(float32(col.B) * factor),
		A: col.A,
	}
}
