package sloperider

import (
	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// NewIce creates the Ice Slope variant: a slick surface with floaty
// jumps and a faster base scroll.
func NewIce() *Game {
	return newGame("sloperider_ice", "Slope Rider: Ice", core.ColorBrightCyan, func(c *config.SlopeRiderConfig) {
		c.Physics.BaseSpeed *= 1.25
		c.Physics.Gravity *= 0.7
		c.Physics.JumpImpulse *= 0.9
	})
}

// NewNight creates the Night Run variant: slower scroll but larger
// rocks spawned closer together.
func NewNight() *Game {
	return newGame("sloperider_night", "Slope Rider: Night", core.ColorBlue, func(c *config.SlopeRiderConfig) {
		c.Physics.BaseSpeed *= 0.9
		c.Obstacles.MinHeight++
		c.Obstacles.MaxHeight++
		c.Obstacles.MinSpacing -= 4
		c.Obstacles.MaxSpacing -= 6
	})
}

// NewStorm creates the Storm Descent variant: heavy winds slam the
// player down faster and pack the rocks tighter.
func NewStorm() *Game {
	return newGame("sloperider_storm", "Slope Rider: Storm", core.ColorMagenta, func(c *config.SlopeRiderConfig) {
		c.Physics.Gravity *= 1.4
		c.Physics.MaxFallSpeed *= 1.3
		c.Obstacles.MinSpacing -= 6
		c.Obstacles.MaxSpacing -= 8
	})
}

// NewTurbo creates the Turbo variant: everything faster, with a
// stronger jump to compensate.
func NewTurbo() *Game {
	return newGame("sloperider_turbo", "Slope Rider: Turbo", core.ColorBrightRed, func(c *config.SlopeRiderConfig) {
		c.Physics.BaseSpeed *= 1.6
		c.Physics.JumpImpulse *= 1.15
		c.Difficulty.Progression.MaxAt = c.Difficulty.Progression.MaxAt / 2
	})
}

func init() {
	registry.Register("sloperider", func() registry.Game { return New() })
	registry.Register("sloperider_ice", func() registry.Game { return NewIce() })
	registry.Register("sloperider_night", func() registry.Game { return NewNight() })
	registry.Register("sloperider_storm", func() registry.Game { return NewStorm() })
	registry.Register("sloperider_turbo", func() registry.Game { return NewTurbo() })
}
