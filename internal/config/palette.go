package config

import "go-battle-city/pkg/render"

// Palette maps every color tag to the classic colors.
func Palette() render.Palette {
	return render.Palette{
		render.ColorBackground: BackgroundColor,
		render.ColorPlayer:     PlayerColor,
		render.ColorEnemy:      EnemyColor,
		render.ColorProjectile: ProjectileColor,
		render.ColorBrick:      BrickColor,
		render.ColorSteel:      SteelColor,
		render.ColorBase:       BaseColor,
		render.ColorText:       TextColor,
		render.ColorGameOver:   GameOverColor,
		render.ColorWin:        WinColor,
	}
}
