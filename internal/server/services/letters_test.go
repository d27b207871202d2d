package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

func TestLetterServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewLetterService(repomanager.NewInMemoryManager())

	letter, err := svc.Create(ctx, 1, "To my past self", "You did fine.")
	require.NoError(t, err)
	require.NotZero(t, letter.ID)

	_, err = svc.Create(ctx, 1, "", "body")
	ve, ok := common.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Title must be non-empty and less than 255 characters.", ve.Error())

	_, err = svc.Create(ctx, 1, "ok", "")
	ve, ok = common.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Content cannot be empty.", ve.Error())

	newTitle := "To my future self"
	updated, err := svc.Update(ctx, letter.ID, 1, LetterPatch{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.Equal(t, "You did fine.", updated.Content)

	require.NoError(t, svc.Delete(ctx, letter.ID, 1))
	_, err = svc.Get(ctx, letter.ID, 1)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLetterServiceOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewLetterService(repomanager.NewInMemoryManager())

	mine, err := svc.Create(ctx, 1, "mine", "content")
	require.NoError(t, err)

	// Another user never sees it.
	_, err = svc.Get(ctx, mine.ID, 2)
	require.ErrorIs(t, err, common.ErrNotFound)

	title := "stolen"
	_, err = svc.Update(ctx, mine.ID, 2, LetterPatch{Title: &title})
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, mine.ID, 2), common.ErrNotFound)

	others, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, others)
}

func TestLetterServiceListOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewLetterService(repomanager.NewInMemoryManager())

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, 1, title, "content")
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	letters, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, letters, 3)
	require.Equal(t, "third", letters[0].Title)
	require.Equal(t, "first", letters[2].Title)
}

func TestNoteService(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(repomanager.NewInMemoryManager())

	_, err := svc.Create(ctx, 1, "")
	ve, ok := common.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Note content cannot be empty.", ve.Error())

	note, err := svc.Create(ctx, 1, "remember to rest")
	require.NoError(t, err)

	content := "remember to rest, really"
	updated, err := svc.Update(ctx, note.ID, 1, NotePatch{Content: &content})
	require.NoError(t, err)
	require.Equal(t, content, updated.Content)

	empty := ""
	_, err = svc.Update(ctx, note.ID, 1, NotePatch{Content: &empty})
	_, ok = common.AsValidation(err)
	require.True(t, ok)

	require.NoError(t, svc.Delete(ctx, note.ID, 1))
	require.ErrorIs(t, svc.Delete(ctx, note.ID, 1), common.ErrNotFound)
}
