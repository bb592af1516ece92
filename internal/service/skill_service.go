package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/model"
)

type skillStore interface {
	List(ctx context.Context) ([]model.Skill, error)
	FindByID(ctx context.Context, id string) (model.Skill, error)
	Create(ctx context.Context, s model.Skill) error
	Update(ctx context.Context, s model.Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillService struct {
	repo skillStore
}

func NewSkillService(repo skillStore) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) List(ctx context.Context) ([]model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) Create(ctx context.Context, req model.CreateSkillRequest) (model.Skill, error) {
	now := time.Now().UTC()
	skill := model.Skill{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Level:     req.Level,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return model.Skill{}, err
	}

	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id string, req model.UpdateSkillRequest) (model.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Skill{}, err
	}

	skill.Name = strings.TrimSpace(req.Name)
	skill.Level = req.Level
	skill.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, skill); err != nil {
		return model.Skill{}, err
	}

	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
