// gamification_service.go
package service

import (
	"context"
	"log"
	"time"

	"aventura-gamer-service/internal/gamification"
	"aventura-gamer-service/internal/model"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	Save(ctx context.Context, p *model.UserProfile) error
	UpdatePoints(ctx context.Context, userID string, points, level int) error
}

type AchievementRepository interface {
	Save(ctx context.Context, a *model.Achievement) error
	FindByID(ctx context.Context, id string) (*model.Achievement, error)
	FindAll(ctx context.Context) ([]*model.Achievement, error)
	Delete(ctx context.Context, id string) error
	FindClaimedIDs(ctx context.Context, userID string) (map[string]bool, error)
	InsertClaim(ctx context.Context, claim model.AchievementClaim) error
}

// AwardOutcome junta lo que la UI necesita tras un otorgamiento: el perfil
// ya persistido y la secuencia de celebraciones a encolar.
type AwardOutcome struct {
	Profile      *model.UserProfile             `json:"profile"`
	LeveledUp    bool                           `json:"leveledUp"`
	FromLevel    int                            `json:"fromLevel"`
	ToLevel      int                            `json:"toLevel"`
	Celebrations []gamification.CelebrationEvent `json:"celebrations"`
}

type GamificationService struct {
	profiles     ProfileRepository
	achievements AchievementRepository
	orders       OrderRepository
}

func NewGamificationService(profiles ProfileRepository, achievements AchievementRepository, orders OrderRepository) *GamificationService {
	return &GamificationService{profiles: profiles, achievements: achievements, orders: orders}
}

func (s *GamificationService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Progress arma los datos del panel de progreso del usuario.
func (s *GamificationService) Progress(ctx context.Context, userID string) (*model.UserProfile, gamification.LevelProgress, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, gamification.LevelProgress{}, err
	}
	lp, err := gamification.ProgressToNextLevel(gamification.Profile{Points: p.Points, Level: p.Level})
	if err != nil {
		return nil, gamification.LevelProgress{}, err
	}
	return p, lp, nil
}

// AwardPoints lee el snapshot del perfil, calcula el estado nuevo con el
// motor puro y lo persiste. La aplicación atómica frente a otorgamientos
// concurrentes queda en manos del store (update sobre el documento).
func (s *GamificationService) AwardPoints(ctx context.Context, userID string, delta int, reason string) (*AwardOutcome, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res, err := gamification.AwardPoints(gamification.Profile{Points: p.Points, Level: p.Level}, delta)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.UpdatePoints(ctx, userID, res.Profile.Points, res.Profile.Level); err != nil {
		return nil, err
	}

	p.Points = res.Profile.Points
	p.Level = res.Profile.Level

	log.Printf("[XP] usuario %s +%d puntos (%s), nivel %d -> %d", userID, delta, reason, res.FromLevel, res.ToLevel)

	return &AwardOutcome{
		Profile:      p,
		LeveledUp:    res.LeveledUp,
		FromLevel:    res.FromLevel,
		ToLevel:      res.ToLevel,
		Celebrations: gamification.CelebrationsFor(delta, res),
	}, nil
}

// counters junta los contadores contra los que se evalúan las condiciones.
func (s *GamificationService) counters(ctx context.Context, userID string) (gamification.Counters, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	purchases, err := s.orders.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return gamification.Counters{
		gamification.ConditionPurchaseCount: int(purchases),
		gamification.ConditionLevelReached:  p.Level,
	}, nil
}

// EvaluateAchievements devuelve el progreso de todos los logros activos del
// usuario, con el estado de reclamo persistido ya mergeado.
func (s *GamificationService) EvaluateAchievements(ctx context.Context, userID string) ([]gamification.AchievementProgress, error) {
	defs, err := s.achievements.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counters, err := s.counters(ctx, userID)
	if err != nil {
		return nil, err
	}
	claimed, err := s.achievements.FindClaimedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := gamification.Evaluate(toDefinitions(defs), counters)
	for i := range progress {
		progress[i].Claimed = claimed[progress[i].Definition.ID]
	}
	return progress, nil
}

// ClaimAchievement revalida server-side, persiste el reclamo (el índice
// único rechaza duplicados) y recién entonces otorga la recompensa.
func (s *GamificationService) ClaimAchievement(ctx context.Context, userID, achievementID string) (*AwardOutcome, error) {
	def, err := s.achievements.FindByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	counters, err := s.counters(ctx, userID)
	if err != nil {
		return nil, err
	}
	claimed, err := s.achievements.FindClaimedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	evaluated := gamification.Evaluate([]gamification.Definition{toDefinition(def)}, counters)
	unlocked := len(evaluated) > 0 && evaluated[0].Unlocked

	_, reward, err := gamification.Claim(toDefinition(def), claimed, unlocked)
	if err != nil {
		return nil, err
	}

	if err := s.achievements.InsertClaim(ctx, model.AchievementClaim{
		UserID:        userID,
		AchievementID: achievementID,
		Reward:        reward,
		ClaimedAt:     time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	return s.AwardPoints(ctx, userID, reward, "logro reclamado: "+def.Title)
}

func toDefinition(a *model.Achievement) gamification.Definition {
	return gamification.Definition{
		ID:             a.AchievementID,
		Title:          a.Title,
		Description:    a.Description,
		Icon:           a.Icon,
		ConditionType:  a.ConditionType,
		ConditionValue: a.ConditionValue,
		XPReward:       a.XPReward,
		Active:         a.Active,
	}
}

func toDefinitions(in []*model.Achievement) []gamification.Definition {
	out := make([]gamification.Definition, 0, len(in))
	for _, a := range in {
		out = append(out, toDefinition(a))
	}
	return out
}
