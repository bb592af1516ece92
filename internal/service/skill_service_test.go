package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/model"
)

type stubSkillStore struct {
	skills map[string]model.Skill
}

func newStubSkillStore() *stubSkillStore {
	return &stubSkillStore{skills: map[string]model.Skill{}}
}

func (s *stubSkillStore) List(_ context.Context) ([]model.Skill, error) {
	out := make([]model.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	return out, nil
}

func (s *stubSkillStore) FindByID(_ context.Context, id string) (model.Skill, error) {
	sk, ok := s.skills[id]
	if !ok {
		return model.Skill{}, model.ErrSkillNotFound
	}
	return sk, nil
}

func (s *stubSkillStore) Create(_ context.Context, sk model.Skill) error {
	for _, existing := range s.skills {
		if existing.Name == sk.Name {
			return model.ErrDuplicateSkill
		}
	}
	s.skills[sk.ID] = sk
	return nil
}

func (s *stubSkillStore) Update(_ context.Context, sk model.Skill) error {
	if _, ok := s.skills[sk.ID]; !ok {
		return model.ErrSkillNotFound
	}
	s.skills[sk.ID] = sk
	return nil
}

func (s *stubSkillStore) Delete(_ context.Context, id string) error {
	if _, ok := s.skills[id]; !ok {
		return model.ErrSkillNotFound
	}
	delete(s.skills, id)
	return nil
}

func TestSkillService(t *testing.T) {
	t.Parallel()

	t.Run("create trims the name and assigns an id", func(t *testing.T) {
		svc := NewSkillService(newStubSkillStore())

		skill, err := svc.Create(context.Background(), model.CreateSkillRequest{Name: "  Go  ", Level: 80})
		require.NoError(t, err)
		require.NotEmpty(t, skill.ID)
		require.Equal(t, "Go", skill.Name)
		require.Equal(t, 80, skill.Level)
	})

	t.Run("duplicate name surfaces from the store", func(t *testing.T) {
		svc := NewSkillService(newStubSkillStore())

		_, err := svc.Create(context.Background(), model.CreateSkillRequest{Name: "Go", Level: 80})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), model.CreateSkillRequest{Name: "Go", Level: 90})
		require.ErrorIs(t, err, model.ErrDuplicateSkill)
	})

	t.Run("update replaces name and level", func(t *testing.T) {
		svc := NewSkillService(newStubSkillStore())

		skill, err := svc.Create(context.Background(), model.CreateSkillRequest{Name: "Go", Level: 80})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), skill.ID, model.UpdateSkillRequest{Name: "Golang", Level: 95})
		require.NoError(t, err)
		require.Equal(t, "Golang", updated.Name)
		require.Equal(t, 95, updated.Level)
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		svc := NewSkillService(newStubSkillStore())

		_, err := svc.Update(context.Background(), "missing", model.UpdateSkillRequest{Name: "Go"})
		require.ErrorIs(t, err, model.ErrSkillNotFound)

		err = svc.Delete(context.Background(), "missing")
		require.ErrorIs(t, err, model.ErrSkillNotFound)
	})
}
