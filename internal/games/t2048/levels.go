// Package t2048 implements 2048: a pure slide-and-merge engine plus the
// campaign and endless adapters that run it on the platform tick loop.
package t2048

// Level is one campaign stage: reach Target to clear it.
type Level struct {
	ID     int
	Name   string
	Target int     // Tile value that clears the level
	Spawn4 float64 // Probability a spawned tile is 4
}

// Engine returns the rules in force while the level is played.
func (l Level) Engine() Engine {
	return Engine{WinTile: l.Target, Spawn4Prob: l.Spawn4}
}

// Levels is the campaign. Board and score carry over between levels, so
// each target builds on the last; late levels raise the 4-spawn rate
// instead of the target.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: DefaultWinTile, Spawn4: DefaultSpawn4Prob},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// LevelAt returns the level at a 0-based index.
func LevelAt(index int) (Level, bool) {
	if index < 0 || index >= len(Levels) {
		return Level{}, false
	}
	return Levels[index], true
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
