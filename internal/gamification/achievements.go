// achievements.go
package gamification

import "errors"

var (
	ErrAlreadyClaimed = errors.New("el logro ya fue reclamado")
	ErrNotUnlocked    = errors.New("el logro todavía no está desbloqueado")
)

// Tipos de condición soportados por las definiciones de logros.
const (
	ConditionPurchaseCount = "purchase_count"
	ConditionLevelReached  = "level_reached"
)

// Definition es una regla de logro administrada por el staff.
type Definition struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	ConditionType  string `json:"conditionType"`
	ConditionValue int    `json:"conditionValue"`
	XPReward       int    `json:"xpReward"`
	Active         bool   `json:"active"`
}

// Counters son los contadores del usuario contra los que se evalúan las
// condiciones (cantidad de compras, nivel actual, etc.), indexados por
// condition type.
type Counters map[string]int

// AchievementProgress es el estado derivado de un logro para un usuario.
// Claimed lo completa el llamador desde su set persistido de reclamos.
type AchievementProgress struct {
	Definition  Definition `json:"definition"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"maxProgress"`
	Unlocked    bool       `json:"unlocked"`
	Claimed     bool       `json:"claimed"`
}

// Evaluate calcula el progreso de cada definición activa contra los
// contadores del usuario. No toca el estado de reclamo.
func Evaluate(defs []Definition, counters Counters) []AchievementProgress {
	var out []AchievementProgress
	for _, d := range defs {
		if !d.Active {
			continue
		}
		progress := counters[d.ConditionType]
		if progress > d.ConditionValue {
			progress = d.ConditionValue
		}
		out = append(out, AchievementProgress{
			Definition:  d,
			Progress:    progress,
			MaxProgress: d.ConditionValue,
			Unlocked:    progress >= d.ConditionValue,
		})
	}
	return out
}

// ClaimedSet es el conjunto de logros ya reclamados por un usuario.
type ClaimedSet map[string]bool

// Claim valida el reclamo de un logro y devuelve la recompensa a otorgar
// (vía AwardPoints) junto con el set actualizado. Reclamar dos veces falla
// con ErrAlreadyClaimed: la recompensa jamás se duplica.
func Claim(def Definition, claimed ClaimedSet, unlocked bool) (ClaimedSet, int, error) {
	if claimed[def.ID] {
		return claimed, 0, ErrAlreadyClaimed
	}
	if !unlocked {
		return claimed, 0, ErrNotUnlocked
	}

	next := make(ClaimedSet, len(claimed)+1)
	for id := range claimed {
		next[id] = true
	}
	next[def.ID] = true

	return next, def.XPReward, nil
}
