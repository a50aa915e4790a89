package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the settings screen
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Callbacks
	OnChange func()
	OnReset  func()
	OnGoBack func()

	// Widget references for updates
	volumeLabel *widget.Label
	resLabel    *widget.Label
	muteButton  *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewSettingsUI creates a new settings UI with ebitenui
func NewSettingsUI(settings *components.SettingsData, onChange, onReset, onGoBack func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: settings,
		OnChange: onChange,
		OnReset:  onReset,
		OnGoBack: onGoBack,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	// Option rows
	optionsContainer := sui.buildOptionsContainer()
	contentContainer.AddChild(optionsContainer)

	// Bottom buttons
	buttonsContainer := sui.buildButtonsContainer()
	contentContainer.AddChild(buttonsContainer)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *SettingsUI) buildOptionsContainer() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	container.AddChild(sui.buildVolumeRow())
	container.AddChild(sui.buildResolutionRow())
	container.AddChild(sui.buildMuteRow())

	return container
}

func (sui *SettingsUI) buildVolumeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text("SFX Volume", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	sui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(systems.GetVolumeLabel(sui.Settings), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.LaunchGold,
		}),
	)
	row.AddChild(sui.volumeLabel)

	downButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(32, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("-", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleVolume(sui.Settings, -1)
			sui.applyChange()
		}),
	)
	row.AddChild(downButton)

	upButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(32, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("+", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleVolume(sui.Settings, +1)
			sui.applyChange()
		}),
	)
	row.AddChild(upButton)

	return row
}

func (sui *SettingsUI) buildResolutionRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text("Window", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	sui.resLabel = widget.NewLabel(
		widget.LabelOpts.Text(systems.GetResolutionLabel(sui.Settings), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.LaunchGold,
		}),
	)
	row.AddChild(sui.resLabel)

	changeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Change", &sui.smallFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleResolution(sui.Settings, +1)
			sui.applyChange()
		}),
	)
	row.AddChild(changeButton)

	return row
}

func (sui *SettingsUI) buildMuteRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	sui.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 24)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(systems.GetMuteLabel(sui.Settings), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleMute(sui.Settings)
			sui.applyChange()
		}),
	)
	row.AddChild(sui.muteButton)

	return row
}

func (sui *SettingsUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.Image(sui.resetButtonImage()),
		widget.ButtonOpts.Text("Reset Records", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnReset != nil {
				sui.OnReset()
			}
		}),
	)
	container.AddChild(resetButton)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnGoBack != nil {
				sui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

func (sui *SettingsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonColor)
	hover := image.NewNineSliceColor(cfg.Menu.ButtonHover)
	pressed := image.NewNineSliceColor(color.RGBA{20, 54, 72, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) resetButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{100, 40, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{140, 60, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{80, 30, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{50, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// applyChange notifies the scene and refreshes widget labels
func (sui *SettingsUI) applyChange() {
	if sui.OnChange != nil {
		sui.OnChange()
	}
	sui.UpdateUI()
}

// UpdateUI updates all UI elements to reflect current settings state
func (sui *SettingsUI) UpdateUI() {
	if sui.volumeLabel != nil {
		sui.volumeLabel.Label = systems.GetVolumeLabel(sui.Settings)
	}
	if sui.resLabel != nil {
		sui.resLabel.Label = systems.GetResolutionLabel(sui.Settings)
	}
	if sui.muteButton != nil {
		if textWidget := sui.muteButton.Text(); textWidget != nil {
			textWidget.Label = systems.GetMuteLabel(sui.Settings)
		}
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
