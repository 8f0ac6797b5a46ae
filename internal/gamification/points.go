// points.go
package gamification

import "errors"

// Cada nivel abarca exactamente 100 puntos de experiencia.
const PointsPerLevel = 100

var ErrInvalidArgument = errors.New("argumento inválido")

// Profile es la vista mínima del perfil que necesita el motor de puntos.
// Es un snapshot: las operaciones devuelven el estado nuevo y el llamador
// es responsable de persistirlo de forma atómica respecto del snapshot.
type Profile struct {
	Points int `json:"points"`
	Level  int `json:"level"`
}

// LevelForPoints deriva el nivel a partir de los puntos acumulados.
// El nivel nunca se guarda por su cuenta: siempre se recalcula de points.
func LevelForPoints(points int) (int, error) {
	if points < 0 {
		return 0, ErrInvalidArgument
	}
	return points/PointsPerLevel + 1, nil
}

// AwardResult es el resultado de otorgar puntos: el perfil actualizado para
// persistir y los datos de la subida de nivel si la hubo.
type AwardResult struct {
	Profile   Profile
	LeveledUp bool
	FromLevel int
	ToLevel   int
}

// AwardPoints suma delta puntos al perfil y recalcula el nivel. No hace I/O.
// delta negativo es un error; delta cero devuelve el perfil sin cambios.
func AwardPoints(p Profile, delta int) (AwardResult, error) {
	if delta < 0 {
		return AwardResult{}, ErrInvalidArgument
	}

	fromLevel, err := LevelForPoints(p.Points)
	if err != nil {
		return AwardResult{}, err
	}

	newPoints := p.Points + delta
	newLevel, err := LevelForPoints(newPoints)
	if err != nil {
		return AwardResult{}, err
	}

	return AwardResult{
		Profile:   Profile{Points: newPoints, Level: newLevel},
		LeveledUp: newLevel > fromLevel,
		FromLevel: fromLevel,
		ToLevel:   newLevel,
	}, nil
}

// LevelProgress describe el avance dentro del nivel actual, para la barra
// del panel de progreso.
type LevelProgress struct {
	CurrentLevelFloor int     `json:"currentLevelFloor"`
	NextLevelCeiling  int     `json:"nextLevelCeiling"`
	XPInLevel         int     `json:"xpInLevel"`
	XPNeeded          int     `json:"xpNeeded"`
	Percent           float64 `json:"percent"`
}

// ProgressToNextLevel calcula piso/techo del nivel actual y cuánta XP falta.
// Para un perfil válido XPInLevel siempre cae en [0, 99].
func ProgressToNextLevel(p Profile) (LevelProgress, error) {
	level, err := LevelForPoints(p.Points)
	if err != nil {
		return LevelProgress{}, err
	}

	floor := (level - 1) * PointsPerLevel
	ceiling := level * PointsPerLevel
	inLevel := p.Points - floor

	percent := float64(inLevel) / float64(PointsPerLevel) * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return LevelProgress{
		CurrentLevelFloor: floor,
		NextLevelCeiling:  ceiling,
		XPInLevel:         inLevel,
		XPNeeded:          ceiling - p.Points,
		Percent:           percent,
	}, nil
}
