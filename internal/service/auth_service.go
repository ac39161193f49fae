package service

import (
	"learn_track_backend/internal/config"
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"learn_track_backend/internal/util"
	"time"
)

// AuthService handles the name/id/role login. There are no passwords: a login
// either registers a new learner or refreshes an existing one, then issues a
// token for the surrounding middleware.
type AuthService struct {
	LearnerRepo *repository.LearnerRepository
	Cfg         *config.Config
}

func NewAuthService(learnerRepo *repository.LearnerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		LearnerRepo: learnerRepo,
		Cfg:         cfg,
	}
}

// Login upserts the learner and returns a signed token plus the stored record.
func (s *AuthService) Login(id, name string, role model.LearnerRole) (string, *model.Learner, error) {
	learner, err := s.LearnerRepo.FindByID(id)
	if err != nil {
		learner = &model.Learner{
			ID:        id,
			Name:      name,
			Role:      role,
			CreatedAt: time.Now(),
		}
	} else {
		learner.Name = name
		learner.Role = role
	}
	s.LearnerRepo.Save(*learner)

	token, err := util.GenerateJWT(learner, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, learner, nil
}

func (s *AuthService) GetLearner(id string) (*model.Learner, error) {
	return s.LearnerRepo.FindByID(id)
}
