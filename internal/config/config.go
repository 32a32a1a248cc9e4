// internal/config/config.go
package config

import "image/color"

const (
	ArenaWidth  = 512
	ArenaHeight = 448

	TankSize       = 16.0
	ProjectileSize = 4.0
	WallSize       = 8.0
	BaseSize       = 16.0

	PlayerSpeed     = 2.0
	EnemySpeed      = 1.0
	ProjectileSpeed = 4.0 // единиц за тик

	ReloadTicks  = 30 // ~0.5 с при 60 TPS
	InitialLives = 3

	EnemyCount      = 3
	EnemySpawnX     = 50.0
	EnemySpawnStepX = 200.0
	EnemySpawnY     = 32.0

	// Таймеры ИИ, в тиках: [Min, Min+Span)
	DirectionTimerMin  = 60
	DirectionTimerSpan = 120
	FireTimerMin       = 90
	FireTimerSpan      = 90

	// При появлении танка таймеры короче: [Min, Min+SpawnSpan)
	SpawnDirectionTimerSpan = 60
	SpawnFireTimerSpan      = 60

	DefaultTPS = 60
)

// PlayerSpawnX and PlayerSpawnY are where the player tank starts and respawns after a hit.
const (
	PlayerSpawnX = ArenaWidth/2 - TankSize/2
	PlayerSpawnY = ArenaHeight - TankSize - 32
)

// HUD layout.
const (
	HUDLivesX      = 10
	HUDLivesY      = 40
	HUDEnemiesX    = ArenaWidth - 120
	HUDEnemiesY    = 40
	HUDFontSize    = 16
	BannerFontSize = 48
	HintFontSize   = 24
	BannerY        = ArenaHeight / 2
	HintOffsetY    = 60
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PlayerColor     = color.RGBA{255, 215, 0, 255}   // жёлтый
	EnemyColor      = color.RGBA{255, 68, 68, 255}   // красный
	ProjectileColor = color.RGBA{255, 255, 255, 255} // белый
	BrickColor      = color.RGBA{139, 69, 19, 255}   // коричневый
	SteelColor      = color.RGBA{136, 136, 136, 255} // серый
	BaseColor       = color.RGBA{0, 255, 0, 255}     // зелёный
	TextColor       = color.RGBA{255, 255, 255, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	WinColor        = color.RGBA{0, 255, 0, 255}
)
