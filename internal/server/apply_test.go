// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package server

import (
	"testing"

	"github.com/avdeenko/biograph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMessage(t *testing.T) {
	tests := []struct {
		name        string
		state       models.DocumentState
		msg         models.WireMessage
		wantChanged bool
		wantErr     error
		check       func(t *testing.T, state models.DocumentState)
	}{
		{
			name:        "push appends entry",
			msg:         models.WireMessage{Type: models.MsgPush, Entry: &models.Entry{ID: "e1", Group: models.Group("g")}},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				require.Len(t, state.Entries, 1)
				assert.Equal(t, models.ElementID("e1"), state.Entries[0].ID)
			},
		},
		{
			name:    "push duplicate id rejected",
			state:   models.DocumentState{Entries: []models.Entry{{ID: "e1"}}},
			msg:     models.WireMessage{Type: models.MsgPush, Entry: &models.Entry{ID: "e1"}},
			wantErr: ErrDuplicateEntry,
		},
		{
			name:    "push without entry rejected",
			msg:     models.WireMessage{Type: models.MsgPush},
			wantErr: ErrMissingEntry,
		},
		{
			name:        "pull removes entry",
			state:       models.DocumentState{Entries: []models.Entry{{ID: "e1"}, {ID: "e2"}}},
			msg:         models.WireMessage{Type: models.MsgPull, TargetID: "e1"},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				require.Len(t, state.Entries, 1)
				assert.Equal(t, models.ElementID("e2"), state.Entries[0].ID)
			},
		},
		{
			name:    "pull unknown id rejected",
			msg:     models.WireMessage{Type: models.MsgPull, TargetID: "ghost"},
			wantErr: ErrEntryNotFound,
		},
		{
			name:  "merge patches group",
			state: models.DocumentState{Entries: []models.Entry{{ID: "e1", Group: models.Group("old")}}},
			msg: models.WireMessage{
				Type: models.MsgMerge, TargetID: "e1",
				Patch: &models.Entry{ID: "e1", Group: models.Group("new")},
			},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				require.NotNil(t, state.Entries[0].Group)
				assert.Equal(t, "new", *state.Entries[0].Group)
			},
		},
		{
			name:  "merge to explicit null group",
			state: models.DocumentState{Entries: []models.Entry{{ID: "e1", Group: models.Group("old")}}},
			msg: models.WireMessage{
				Type: models.MsgMerge, TargetID: "e1",
				Patch: &models.Entry{ID: "e1"},
			},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				assert.Nil(t, state.Entries[0].Group)
			},
		},
		{
			name:    "merge unknown id rejected",
			msg:     models.WireMessage{Type: models.MsgMerge, TargetID: "ghost", Patch: &models.Entry{}},
			wantErr: ErrEntryNotFound,
		},
		{
			name:        "rename",
			state:       models.DocumentState{Name: "old"},
			msg:         models.WireMessage{Type: models.MsgRename, Name: "new"},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				assert.Equal(t, "new", state.Name)
			},
		},
		{
			name:  "rename to current name is no-op",
			state: models.DocumentState{Name: "same"},
			msg:   models.WireMessage{Type: models.MsgRename, Name: "same"},
		},
		{
			name:        "organism appended once",
			state:       models.DocumentState{Organisms: []string{"Homo sapiens"}},
			msg:         models.WireMessage{Type: models.MsgOrganism, Organism: "Mus musculus"},
			wantChanged: true,
			check: func(t *testing.T, state models.DocumentState) {
				assert.Equal(t, []string{"Homo sapiens", "Mus musculus"}, state.Organisms)
			},
		},
		{
			name:  "duplicate organism is no-op",
			state: models.DocumentState{Organisms: []string{"Homo sapiens"}},
			msg:   models.WireMessage{Type: models.MsgOrganism, Organism: "Homo sapiens"},
		},
		{
			name: "resync never changes state",
			msg:  models.WireMessage{Type: models.MsgResync},
		},
		{
			name:    "unknown type rejected",
			msg:     models.WireMessage{Type: "explode"},
			wantErr: ErrUnknownMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			changed, err := applyMessage(&state, tt.msg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.state, state, "failed op must not mutate state")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			if tt.check != nil {
				tt.check(t, state)
			}
		})
	}
}
