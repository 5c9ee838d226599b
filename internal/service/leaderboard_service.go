package service

import (
	"context"
	"log"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"
)

// RankedUser is one leaderboard row joined with display attributes.
type RankedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Position int    `json:"position"`
}

type LeaderboardService struct {
	Leaderboard *repository.LeaderboardRepository
	UserRepo    *repository.UserRepository
	Size        int
}

func NewLeaderboardService(leaderboard *repository.LeaderboardRepository, userRepo *repository.UserRepository, size int) *LeaderboardService {
	return &LeaderboardService{Leaderboard: leaderboard, UserRepo: userRepo, Size: size}
}

// Top joins the leaderboard entries with profile display data. Rows whose
// profile has disappeared keep their XP with a blank name.
func (s *LeaderboardService) Top(ctx context.Context, weekly bool) ([]RankedUser, error) {
	entries, err := s.Leaderboard.Top(ctx, weekly, time.Now(), s.Size)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedUser, 0, len(entries))
	for _, entry := range entries {
		row := RankedUser{
			ID:       entry.UserID,
			XP:       entry.XP,
			Level:    models.LevelForXP(entry.XP),
			Position: entry.Position,
		}
		user, err := s.UserRepo.FindByID(ctx, entry.UserID)
		if err != nil {
			log.Printf("leaderboard row %s has no profile: %v", entry.UserID, err)
		} else {
			row.Name = user.Name
			row.Avatar = user.Avatar
		}
		ranked = append(ranked, row)
	}
	return ranked, nil
}

// Rank returns the user's 1-based position, 0 when unranked.
func (s *LeaderboardService) Rank(ctx context.Context, weekly bool, userID string) (int, error) {
	return s.Leaderboard.Rank(ctx, weekly, time.Now(), userID)
}
