package service_test

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsim/league-service/internal/repository"
	"github.com/hoopsim/league-service/internal/service"
)

func newCoachFixture() (*fakeCoachRepo, service.CoachService) {
	repo := newFakeCoachRepo()
	svc := service.NewCoachService(repo, clockwork.NewFakeClockAt(fixedTime()), zerolog.Nop())
	return repo, svc
}

func TestCreateCoach(t *testing.T) {
	_, svc := newCoachFixture()

	coach, err := svc.CreateCoach(context.Background(), "  Lou Brennan  ", "")
	require.NoError(t, err)
	assert.NotEmpty(t, coach.ID)
	assert.Equal(t, "Lou Brennan", coach.Name)
	assert.Empty(t, coach.CurrentTeam)

	_, err = svc.CreateCoach(context.Background(), "x", "")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestUpdateCoach_PartialEdit(t *testing.T) {
	_, svc := newCoachFixture()
	ctx := context.Background()

	coach, err := svc.CreateCoach(ctx, "Lou Brennan", "")
	require.NoError(t, err)

	team := "hawks"
	updated, err := svc.UpdateCoach(ctx, coach.ID, service.CoachUpdate{CurrentTeam: &team})
	require.NoError(t, err)
	assert.Equal(t, "hawks", updated.CurrentTeam)
	assert.Equal(t, "Lou Brennan", updated.Name)

	_, err = svc.UpdateCoach(ctx, "ghost", service.CoachUpdate{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListCoaches(t *testing.T) {
	_, svc := newCoachFixture()
	ctx := context.Background()

	_, err := svc.CreateCoach(ctx, "Lou Brennan", "")
	require.NoError(t, err)
	_, err = svc.CreateCoach(ctx, "Pat Doyle", "")
	require.NoError(t, err)

	coaches, err := svc.ListCoaches(ctx)
	require.NoError(t, err)
	assert.Len(t, coaches, 2)
}
