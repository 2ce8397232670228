package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EndingLineData is one credits line fading in after its delay.
type EndingLineData struct {
	Text  string
	Y     int
	Large bool
	Delay float32
	Alpha float32
	Fade  *gween.Tween
}

// EndingData stores the credits screen state
type EndingData struct {
	Elapsed    float32
	Brightness float32
	Brighten   *gween.Tween
	Lines      []EndingLineData
}

var Ending = donburi.NewComponentType[EndingData]()
