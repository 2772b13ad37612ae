package dungeon

// FreeCapacity returns the number of cells left for mandatory occupants.
//
// The percentage term uses integer division before the subtraction, so any
// combined density below 100% leaves the multiplier at 1 and only 100% or
// more drops it to 0 (or below). This differs from DensityCount on purpose.
func FreeCapacity(gridSize, obstaclePercent, itemPercent int) int {
	percentOccupied := obstaclePercent + itemPercent
	return gridSize * gridSize * (1 - percentOccupied/100)
}

// CheckCapacity fails with a *ConfigurationError when the grid cannot fit
// the player, every exit and every enemy.
func CheckCapacity(gridSize, obstaclePercent, itemPercent, enemies, exits int) error {
	free := FreeCapacity(gridSize, obstaclePercent, itemPercent)
	required := enemies + exits + 1 // +1 for the player's own cell
	if free < required {
		return &ConfigurationError{
			GridSize:     gridSize,
			FreeCapacity: free,
			Required:     required,
		}
	}
	return nil
}

// DensityCount returns how many occupants a density percentage asks for.
// Evaluated left to right: (gridSize² × percent) / 100.
func DensityCount(gridSize, percent int) int {
	return gridSize * gridSize * percent / 100
}
