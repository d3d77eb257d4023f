// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package element

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeenko/biograph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPayload(t *testing.T) {
	p := models.ElementPayload{ID: "e1", Kind: models.KindMacromolecule, Label: "HK1"}
	el := FromPayload(p)

	assert.Equal(t, models.ElementID("e1"), el.ElementID())
	assert.Equal(t, models.KindMacromolecule, el.Kind())
	assert.Equal(t, "HK1", el.Label())
	assert.False(t, el.Live())
}

func TestSynch_Toggle(t *testing.T) {
	ctx := context.Background()

	var transitions []bool
	el := FromPayload(models.ElementPayload{ID: "e1"}, WithSynchFunc(
		func(_ context.Context, _ models.ElementID, enable bool) error {
			transitions = append(transitions, enable)
			return nil
		}))

	require.NoError(t, el.Synch(ctx, true))
	assert.True(t, el.Live())

	// Enabling twice is a no-op: the hook fires once.
	require.NoError(t, el.Synch(ctx, true))
	assert.Equal(t, []bool{true}, transitions)

	require.NoError(t, el.Synch(ctx, false))
	assert.False(t, el.Live())
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestSynch_HookFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("transport down")

	el := FromPayload(models.ElementPayload{ID: "e1"}, WithSynchFunc(
		func(context.Context, models.ElementID, bool) error { return boom }))

	err := el.Synch(ctx, true)
	require.ErrorIs(t, err, boom)
	assert.False(t, el.Live())
}

func TestSynch_NoHook(t *testing.T) {
	el := FromPayload(models.ElementPayload{ID: "e1"})
	require.NoError(t, el.Synch(context.Background(), true))
	assert.True(t, el.Live())
}

func TestRemote_SatisfiesModelElement(t *testing.T) {
	var _ models.Element = (*Remote)(nil)
}
