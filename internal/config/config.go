// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TicksPerSec  = 60
	MaxDeltaTime = 0.1 // seconds, clamps long frames

	Gravity  = 0.5 // distance units per tick²
	MaxPower = 30  // speed units

	BirdRadius  = 20.0
	BlockWidth  = 40.0
	BlockHeight = 200.0

	LauncherX          = 100.0
	LauncherBaseWidth  = 40.0
	LauncherBaseHeight = 60.0
	LauncherArmLength  = 150.0
	LauncherPivotY     = ScreenHeight - LauncherBaseHeight
	GroundHeight       = 50.0

	MaxPullDistance = 200.0
	MinAimAngle     = -math.Pi / 2
	MaxAimAngle     = 0.0
	DefaultAimAngle = -math.Pi / 4
	GrabRadiusScale = 2.0 // pointer must land within GrabRadiusScale*BirdRadius of the bird

	TrailLength       = 10
	TrailParticleRate = 0.3

	HitDamage       = 50
	DestroyBonus    = 100
	LevelBonus      = 1000
	BlockRotJitter  = 0.1
	BoostFactor     = 1.5
	SplitSpreadX    = 5.0
	AreaRadius      = 100.0
	AreaDamage      = 50
	RestSpeed       = 0.1
	RestGroundDepth = 100.0 // resting only counts below ScreenHeight-RestGroundDepth

	ParticleCapacity = 1024
	ParticleDecay    = 0.02
	ParticleMaxSpeed = 4.0
	ParticleMinSize  = 2.0
	ParticleSizeVar  = 3.0

	LaunchParticles  = 20
	BoostParticles   = 30
	SplitParticles   = 40
	AreaParticles    = 20
	DestroyParticles = 30

	AimLineLength = 200.0
	BucketRadius  = 30.0
)

var (
	SkyTopColor     = color.RGBA{135, 206, 235, 255}
	SkyBottomColor  = color.RGBA{224, 247, 255, 255}
	GroundColor     = color.RGBA{34, 139, 34, 255}
	GroundDarkColor = color.RGBA{0, 100, 0, 255}
	LauncherColor   = color.RGBA{139, 69, 19, 255}
	ArmColor        = color.RGBA{101, 67, 33, 255}
	AimLineColor    = color.RGBA{255, 255, 255, 128}
	HealthBackColor = color.RGBA{255, 0, 0, 128}
	HealthFillColor = color.RGBA{0, 255, 0, 128}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	MeterBackColor  = color.RGBA{0, 0, 0, 128}
	MeterLowColor   = color.RGBA{0, 255, 0, 255}
	MeterMidColor   = color.RGBA{255, 255, 0, 255}
	MeterHighColor  = color.RGBA{255, 0, 0, 255}
	BeakColor       = color.RGBA{255, 165, 0, 255}
	EyeWhiteColor   = color.RGBA{255, 255, 255, 255}
	EyePupilColor   = color.RGBA{0, 0, 0, 255}
)

// RestPosition is where a fresh bird sits in the launcher bucket.
func RestPosition() (x, y float64) {
	return LauncherX + LauncherArmLength, LauncherPivotY
}
