package config

// BoardConfig is the root config for board.yaml / board.json
type BoardConfig struct {
	Display DisplayConfig `yaml:"display" json:"display"`
	Board   LayoutConfig  `yaml:"board" json:"board"`
	Physics PhysicsConfig `yaml:"physics" json:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn" json:"spawn"`
	Debug   DebugConfig   `yaml:"debug" json:"debug"`
	Audio   AudioConfig   `yaml:"audio" json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth" json:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight" json:"screenHeight"`
	Scale        int `yaml:"scale" json:"scale"`
	Framerate    int `yaml:"framerate" json:"framerate"`
}

// LayoutConfig describes the peg lattice. Horizontal and vertical peg
// spacing are both derived as 3 ball diameters.
type LayoutConfig struct {
	PegRadius      float64 `yaml:"pegRadius" json:"pegRadius"`
	BallRadius     float64 `yaml:"ballRadius" json:"ballRadius"`
	PegsInFirstRow int     `yaml:"pegsInFirstRow" json:"pegsInFirstRow"`
	NumRows        int     `yaml:"numRows" json:"numRows"`
	FirstRowY      float64 `yaml:"firstRowY" json:"firstRowY"` // y of row 0 (pixels from top)
}

type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity" json:"gravity"`       // pixels/sec²
	WiggleDeg  float64 `yaml:"wiggleDeg" json:"wiggleDeg"`   // max angular jitter on peg hits (degrees)
	Elasticity float64 `yaml:"elasticity" json:"elasticity"` // 0-1, velocity kept per bounce
}

type SpawnConfig struct {
	NumBalls int     `yaml:"numBalls" json:"numBalls"`
	Jitter   float64 `yaml:"jitter" json:"jitter"` // max horizontal offset from center (pixels)
	Seed     int64   `yaml:"seed" json:"seed"`     // 0 = time-based
}

type DebugConfig struct {
	ShowWalls   bool    `yaml:"showWalls" json:"showWalls"`
	ShowGrid    bool    `yaml:"showGrid" json:"showGrid"`
	GridSpacing float64 `yaml:"gridSpacing" json:"gridSpacing"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" json:"enabled"`
	Frequency  float64 `yaml:"frequency" json:"frequency"`   // Hz
	DurationMs int     `yaml:"durationMs" json:"durationMs"` // click length
	Volume     float64 `yaml:"volume" json:"volume"`         // beep effects.Volume exponent (base 2)
}

// NumBuckets is the number of bins at the bottom of the board.
func (c *BoardConfig) NumBuckets() int {
	return c.Board.NumRows + c.Board.PegsInFirstRow + 1
}

// Separation is the gap left between a ball and whatever it was pushed
// out of, so the same contact is not detected again next frame.
const Separation = 0.015

// Spacing returns the distance between neighbouring pegs.
func (c *BoardConfig) Spacing() float64 {
	return 3 * (2 * c.Board.BallRadius)
}

// Default returns the classic board: 11 rows starting with 5 pegs,
// 100 balls on a 600x600 screen.
func Default() *BoardConfig {
	return &BoardConfig{
		Display: DisplayConfig{
			ScreenWidth:  600,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Board: LayoutConfig{
			PegRadius:      3,
			BallRadius:     5,
			PegsInFirstRow: 5,
			NumRows:        10,
			FirstRowY:      100,
		},
		Physics: PhysicsConfig{
			Gravity:    300,
			WiggleDeg:  5,
			Elasticity: 0.5,
		},
		Spawn: SpawnConfig{
			NumBalls: 100,
			Jitter:   1,
		},
		Debug: DebugConfig{
			ShowWalls:   true,
			ShowGrid:    true,
			GridSpacing: 50,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Frequency:  880,
			DurationMs: 15,
			Volume:     -3,
		},
	}
}
