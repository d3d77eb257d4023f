// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package replica

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingForwarder rejects every op, simulating a hub that refused the push.
type failingForwarder struct{ err error }

func (f *failingForwarder) Forward(context.Context, models.WireMessage) error { return f.err }

// recordingForwarder captures forwarded frames.
type recordingForwarder struct{ msgs []models.WireMessage }

func (f *recordingForwarder) Forward(_ context.Context, msg models.WireMessage) error {
	f.msgs = append(f.msgs, msg)
	return nil
}

func newTestDoc() *Doc { return NewDoc(logger.Nop()) }

func TestDoc_PushAndEntries(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()

	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e1", Group: models.Group("a")}, Options{}))
	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e2"}, Options{}))

	entries := doc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.ElementID("e1"), entries[0].ID)
	assert.Equal(t, models.ElementID("e2"), entries[1].ID)
}

func TestDoc_PushDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()

	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e1"}, Options{}))
	err := doc.Push(ctx, models.Entry{ID: "e1", Group: models.Group("b")}, Options{})
	require.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Len(t, doc.Entries(), 1)
}

func TestDoc_PushForwardFailureReverts(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()
	boom := errors.New("hub rejected")
	doc.SetForwarder(&failingForwarder{err: boom})

	err := doc.Push(ctx, models.Entry{ID: "e1"}, Options{})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, doc.Entries())
}

func TestDoc_PullByID(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()
	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e1"}, Options{}))

	require.NoError(t, doc.PullByID(ctx, "e1", Options{}))
	assert.Empty(t, doc.Entries())

	require.ErrorIs(t, doc.PullByID(ctx, "e1", Options{}), ErrEntryNotFound)
}

func TestDoc_MergeByID(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()
	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e1", Group: models.Group("a")}, Options{}))

	require.NoError(t, doc.MergeByID(ctx, "e1", models.Entry{ID: "e1", Group: models.Group("b")}, Options{}))
	entry, ok := models.EntryByID(doc.Entries(), "e1")
	require.True(t, ok)
	require.NotNil(t, entry.Group)
	assert.Equal(t, "b", *entry.Group)

	// A nil patch group clears the classification to the explicit null.
	require.NoError(t, doc.MergeByID(ctx, "e1", models.Entry{ID: "e1"}, Options{}))
	entry, _ = models.EntryByID(doc.Entries(), "e1")
	assert.Nil(t, entry.Group)

	require.ErrorIs(t, doc.MergeByID(ctx, "ghost", models.Entry{ID: "ghost"}, Options{}), ErrEntryNotFound)
}

func TestDoc_ForwardCarriesSilentFlag(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()
	fwd := &recordingForwarder{}
	doc.SetForwarder(fwd)

	require.NoError(t, doc.Push(ctx, models.Entry{ID: "e1"}, Options{Silent: true}))
	require.NoError(t, doc.SetName(ctx, "glycolysis", Options{}))

	require.Len(t, fwd.msgs, 2)
	assert.Equal(t, models.MsgPush, fwd.msgs[0].Type)
	assert.True(t, fwd.msgs[0].Silent)
	assert.Equal(t, models.MsgRename, fwd.msgs[1].Type)
	assert.False(t, fwd.msgs[1].Silent)
}

func TestDoc_AddOrganism(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()

	require.NoError(t, doc.AddOrganism(ctx, "E. coli", Options{}))
	require.NoError(t, doc.AddOrganism(ctx, "E. coli", Options{})) // dedup
	assert.Equal(t, []string{"E. coli"}, doc.Organisms())
}

func TestDoc_ApplyRemoteFeedsSubscribers(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()

	var gotUpdated, gotPrevious models.DocumentState
	var calls int
	doc.SubscribeDiffs(func(_ context.Context, updated, previous models.DocumentState) error {
		calls++
		gotUpdated, gotPrevious = updated, previous
		return nil
	})

	next := models.DocumentState{Name: "doc", Entries: []models.Entry{{ID: "e1"}}}
	require.NoError(t, doc.ApplyRemote(ctx, next))

	require.Equal(t, 1, calls)
	assert.Equal(t, "doc", gotUpdated.Name)
	assert.Empty(t, gotPrevious.Entries)
	assert.Equal(t, "doc", doc.Name())

	// Identical snapshot: digest matches, nobody is notified.
	require.NoError(t, doc.ApplyRemote(ctx, next))
	assert.Equal(t, 1, calls)
}

func TestDoc_SubscribeDiffsCancel(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()

	var calls int
	cancel := doc.SubscribeDiffs(func(context.Context, models.DocumentState, models.DocumentState) error {
		calls++
		return nil
	})

	require.NoError(t, doc.ApplyRemote(ctx, models.DocumentState{Name: "one"}))
	cancel()
	require.NoError(t, doc.ApplyRemote(ctx, models.DocumentState{Name: "two"}))

	assert.Equal(t, 1, calls)
}

func TestDoc_ApplyRemoteSubscriberError(t *testing.T) {
	ctx := context.Background()
	doc := newTestDoc()
	boom := errors.New("reconcile failed")

	doc.SubscribeDiffs(func(context.Context, models.DocumentState, models.DocumentState) error {
		return boom
	})

	err := doc.ApplyRemote(ctx, models.DocumentState{Name: "doc"})
	require.ErrorIs(t, err, boom)
	// The snapshot rolled back, so re-applying it is not digest-deduped.
	assert.Equal(t, "", doc.Name())

	calls := 0
	doc.SubscribeDiffs(func(context.Context, models.DocumentState, models.DocumentState) error {
		calls++
		return nil
	})
	require.ErrorIs(t, doc.ApplyRemote(ctx, models.DocumentState{Name: "doc"}), boom)
	assert.Equal(t, 1, calls, "rolled-back snapshot must be re-delivered")
}

func TestDigest(t *testing.T) {
	a := models.DocumentState{Name: "n", Entries: []models.Entry{{ID: "e1", Group: models.Group("g")}}}
	b := a.Clone()

	assert.Equal(t, Digest(a), Digest(b))

	b.Entries[0].Group = nil
	assert.NotEqual(t, Digest(a), Digest(b))
}
