package ui

import (
	"bytes"

	cfg "github.com/automoto/countdown/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay        func()
	OnToggleMusic func() bool // returns the new music setting
	OnHover       func()
	OnClick       func()

	musicButton *widget.Button
	buttonFace  text.Face
}

// NewTitleUI creates the title screen buttons. musicOn sets the initial
// label of the music toggle.
func NewTitleUI(musicOn bool, onPlay func(), onToggleMusic func() bool, onHover, onClick func()) *TitleUI {
	tui := &TitleUI{
		OnPlay:        onPlay,
		OnToggleMusic: onToggleMusic,
		OnHover:       onHover,
		OnClick:       onClick,
	}

	tui.loadFonts()
	tui.buildUI(musicOn)

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
}

func (tui *TitleUI) buildUI(musicOn bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Play sits above the screen centre, the music toggle ButtonSpacing below it.
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: cfg.Title.ButtonOffsetY}),
			widget.RowLayoutOpts.Spacing(cfg.Title.ButtonSpacing-cfg.Title.ButtonHeight),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	playButton := tui.newButton(cfg.Title.PlayLabel, func() {
		if tui.OnPlay != nil {
			tui.OnPlay()
		}
	})
	contentContainer.AddChild(playButton)

	tui.musicButton = tui.newButton(musicLabel(musicOn), func() {
		if tui.OnToggleMusic != nil {
			tui.SetMusicLabel(tui.OnToggleMusic())
		}
	})
	contentContainer.AddChild(tui.musicButton)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Title.ButtonWidth, cfg.Title.ButtonHeight),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Title.ButtonText,
			Hover:   cfg.Title.ButtonText,
			Pressed: cfg.Title.ButtonText,
		}),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			if tui.OnHover != nil {
				tui.OnHover()
			}
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnClick != nil {
				tui.OnClick()
			}
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Title.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.Title.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Title.ButtonPressed),
	}
}

// SetMusicLabel updates the toggle button to show the music setting.
func (tui *TitleUI) SetMusicLabel(on bool) {
	if tui.musicButton == nil {
		return
	}
	if textWidget := tui.musicButton.Text(); textWidget != nil {
		textWidget.Label = musicLabel(on)
	}
}

func musicLabel(on bool) string {
	if on {
		return cfg.Title.MusicOnLabel
	}
	return cfg.Title.MusicOffLabel
}

func (tui *TitleUI) Update() {
	tui.UI.Update()
}
