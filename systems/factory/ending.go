package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/countdown/archetypes"
	"github.com/automoto/countdown/components"
	"github.com/automoto/countdown/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnding spawns the credits state. finalTime replaces the %s in the
// configured lines.
func CreateEnding(ecs *ecs.ECS, finalTime string) {
	cfg := config.Ending
	lines := make([]components.EndingLineData, 0, len(cfg.Lines))
	for _, l := range cfg.Lines {
		text := l.Text
		if strings.Contains(text, "%s") {
			text = fmt.Sprintf(text, finalTime)
		}
		lines = append(lines, components.EndingLineData{
			Text:  text,
			Y:     l.Y,
			Large: l.Large,
			Delay: float32(l.Delay),
			Fade:  gween.New(0, 1, float32(cfg.FadeTime), ease.Linear),
		})
	}

	entry := archetypes.Ending.Spawn(ecs)
	components.Ending.SetValue(entry, components.EndingData{
		Brighten: gween.New(0, 1, float32(cfg.BrightenTime), ease.OutQuad),
		Lines:    lines,
	})
}
