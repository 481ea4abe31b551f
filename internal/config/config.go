package config

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particle Field - T: toggle theme, Esc/Q: quit"

	// Field parameters
	AreaPerParticle   = 15000.0
	MaxSpeed          = 0.25
	MinRadius         = 1.0
	RadiusSpan        = 2.0
	MinOpacity        = 0.2
	OpacitySpan       = 0.5
	PointerRange      = 150.0
	PointerForce      = 0.02
	ConnectRange      = 120.0
	ConnectLineWidth  = 1.0
	DarkLineOpacity   = 0.15
	LightLineOpacity  = 0.08
	ParticleR         = 99
	ParticleG         = 102
	ParticleB         = 241
	DefaultFrameRate  = 60
	TickStatsRingSize = 120

	// Theme button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonMargin = 16

	// Terminal cell geometry in surface pixels
	CellWidth  = 8
	CellHeight = 16

	// Theme chime
	ChimeSampleRate = 44100
	ChimeDarkHz     = 523.25
	ChimeLightHz    = 783.99
	ChimeDurationMs = 90
	ChimeVolume     = 0.25
)
