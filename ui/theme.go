package ui

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/terra/common"
	"golang.org/x/image/font/basicfont"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gold      = color.NRGBA{R: 0xff, G: 0xdd, B: 0x44, A: 0xff}
	glitch    = color.NRGBA{G: 0xff, A: 0xff}
	danger    = color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}
	panelFill = color.NRGBA{A: 200}
	btnIdle   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	btnHover  = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	btnPress  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// textCols is how many basicfont glyphs fit across a panel.
const textCols = 70

type theme struct {
	face     ebtext.Face
	panel    *imageui.NineSlice
	button   *widget.ButtonImage
	btnColor *widget.ButtonTextColor
}

func newTheme() *theme {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	return &theme{
		face:  goFace,
		panel: imageui.NewNineSliceColor(panelFill),
		button: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(btnIdle),
			Hover:   imageui.NewNineSliceColor(btnHover),
			Pressed: imageui.NewNineSliceColor(btnPress),
		},
		btnColor: &widget.ButtonTextColor{Idle: white},
	}
}

// panel is a centered vertical box the size of half the screen.
func (t *theme) newPanel() (root, panel *widget.Container) {
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.GameWidth/2, common.GameHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root, panel
}

func (t *theme) addText(parent *widget.Container, s string, c color.Color) {
	for _, line := range common.WrapText(s, textCols) {
		parent.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &t.face, c),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		))
	}
}

func (t *theme) addButton(parent *widget.Container, label string, onClick func()) {
	parent.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(t.button),
		widget.ButtonOpts.Text(label, &t.face, t.btnColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	))
}
