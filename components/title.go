package components

import "github.com/yohamta/donburi"

// TitleData stores the title screen state
type TitleData struct {
	Start bool // play was clicked
}

var Title = donburi.NewComponentType[TitleData]()
