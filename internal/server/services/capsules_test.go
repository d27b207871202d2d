package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

func TestCapsuleServiceCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewCapsuleService(repomanager.NewInMemoryManager()).
		WithClock(func() time.Time { return now })

	t.Run("future date", func(t *testing.T) {
		capsule, err := svc.Create(ctx, 1, "open me later", now.Add(24*time.Hour))
		require.NoError(t, err)
		require.NotZero(t, capsule.ID)
	})

	t.Run("past date", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, "too late", now.Add(-time.Hour))
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Open date must be in the future.", ve.Error())
	})

	t.Run("exactly now", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, "right now", now)
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Open date must be in the future.", ve.Error())
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, "", now.Add(time.Hour))
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Message cannot be empty.", ve.Error())
	})
}

func TestCapsuleServiceUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewCapsuleService(repomanager.NewInMemoryManager()).
		WithClock(func() time.Time { return now })

	capsule, err := svc.Create(ctx, 1, "sealed", now.Add(time.Hour))
	require.NoError(t, err)

	t.Run("message only leaves date alone", func(t *testing.T) {
		// Move the clock past the open date; editing just the message
		// must still work.
		now = now.Add(2 * time.Hour)
		msg := "sealed, amended"
		updated, err := svc.Update(ctx, capsule.ID, 1, CapsulePatch{Message: &msg})
		require.NoError(t, err)
		require.Equal(t, msg, updated.Message)
	})

	t.Run("new date must be future", func(t *testing.T) {
		past := now.Add(-time.Minute)
		_, err := svc.Update(ctx, capsule.ID, 1, CapsulePatch{OpenDate: &past})
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Open date must be in the future.", ve.Error())
	})

	t.Run("unknown id", func(t *testing.T) {
		msg := "x"
		_, err := svc.Update(ctx, 999, 1, CapsulePatch{Message: &msg})
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestWellnessService(t *testing.T) {
	ctx := context.Background()
	svc := NewWellnessService(repomanager.NewInMemoryManager())

	note, err := svc.RandomSoulNote(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, note.Message)

	require.NotEmpty(t, svc.LoopPrompt())

	techniques := svc.Techniques()
	require.NotEmpty(t, techniques)
	for _, tech := range techniques {
		require.NotEmpty(t, tech.Name)
		require.NotEmpty(t, tech.Instructions)
		require.NotEmpty(t, tech.Duration)
	}
}
