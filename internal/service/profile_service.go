package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/data"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/event"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileService owns the progress ledger: XP, level and the three skill
// attributes. Mutations happen on the loaded snapshot and are flushed through
// the write-behind queue; callers get the updated profile back immediately.
// Each mutation holds the user's lock across load-mutate-persist, so two
// concurrent awards never read the same stored snapshot and lose one.
type ProfileService struct {
	UserRepo    *repository.UserRepository
	KV          *repository.KVRepository
	Leaderboard *repository.LeaderboardRepository
	Writer      *store.Writer
	Publisher   *event.Publisher

	locks *userLocks
}

func NewProfileService(
	userRepo *repository.UserRepository,
	kv *repository.KVRepository,
	leaderboard *repository.LeaderboardRepository,
	writer *store.Writer,
	publisher *event.Publisher,
) *ProfileService {
	return &ProfileService{
		UserRepo:    userRepo,
		KV:          kv,
		Leaderboard: leaderboard,
		Writer:      writer,
		Publisher:   publisher,
		locks:       newUserLocks(),
	}
}

func profileKey(userID string) string { return "profile:" + userID }

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile registers a fresh ledger for a new user.
func (s *ProfileService) CreateProfile(ctx context.Context, id, name, avatar string) (*models.User, error) {
	user := models.NewUser(id, name, avatar)
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.persist(user)
	return user, nil
}

// AwardXP applies one award to the ledger. A missing profile is a silent
// no-op, guarding against awards racing a session restore.
func (s *ProfileService) AwardXP(ctx context.Context, userID string, amount int, attribute models.Attribute) (*models.User, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		log.Printf("award of %d xp for missing profile %s ignored", amount, userID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	user.AwardXP(amount, attribute)
	s.persist(user)

	if s.Leaderboard != nil {
		if err := s.Leaderboard.Record(ctx, userID, amount, time.Now()); err != nil {
			log.Printf("error updating leaderboard for %s: %v", userID, err)
		}
	}

	s.Publisher.Publish(event.XPAwarded, map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"attribute": attribute,
		"xp":        user.XP,
		"level":     user.Level,
	})
	return user, nil
}

// UpdateProfile patches the display attributes (name, avatar).
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, name, avatar string) (*models.User, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	if avatar != "" && !data.ValidAvatar(avatar) {
		return nil, fmt.Errorf("unknown avatar %q", avatar)
	}

	update := bson.M{"updated_at": time.Now()}
	if name != "" {
		update["name"] = name
	}
	if avatar != "" {
		update["avatar"] = avatar
	}
	if err := s.UserRepo.Update(ctx, userID, update); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.UserRepo.FindByID(ctx, userID)
}

// ResetProfile destroys the ledger and its derived state; the caller is
// expected to route the user back to onboarding.
func (s *ProfileService) ResetProfile(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.UserRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if err := s.KV.Delete(ctx, profileKey(userID)); err != nil {
		log.Printf("error clearing cached profile for %s: %v", userID, err)
	}
	if err := s.KV.Delete(ctx, missionsKey(userID)); err != nil {
		log.Printf("error clearing mission state for %s: %v", userID, err)
	}
	if err := s.KV.Delete(ctx, prefsKey(userID)); err != nil {
		log.Printf("error clearing preferences for %s: %v", userID, err)
	}
	if s.Leaderboard != nil {
		if err := s.Leaderboard.Remove(ctx, userID, time.Now()); err != nil {
			log.Printf("error removing %s from leaderboard: %v", userID, err)
		}
	}
	s.Publisher.Publish(event.ProfileReset, map[string]any{"user_id": userID})
	return nil
}

// persist enqueues the write-behind flush of the latest profile snapshot to
// Mongo and the key-value cache. Rapid awards collapse into one write.
func (s *ProfileService) persist(user *models.User) {
	snapshot := *user
	s.Writer.Enqueue(profileKey(user.ID), func(ctx context.Context) error {
		if err := s.UserRepo.Save(ctx, &snapshot); err != nil {
			return err
		}
		return s.KV.Set(ctx, profileKey(snapshot.ID), &snapshot)
	})
}
