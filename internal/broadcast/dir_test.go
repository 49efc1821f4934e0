package broadcast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMedium(t *testing.T, dir string) *DirMedium {
	t.Helper()
	medium, err := NewDirMedium(dir, 20*time.Millisecond, nil)
	require.NoError(t, err)
	return medium
}

type markerRecorder struct {
	mu      sync.Mutex
	markers []Marker
}

func (r *markerRecorder) record(marker Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = append(r.markers, marker)
}

func (r *markerRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.markers)
}

func TestDirMediumDeliversAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	publisher := newTestMedium(t, dir)
	subscriber := newTestMedium(t, dir)

	var rec markerRecorder
	unsubscribe, err := subscriber.Subscribe(KindLogin, rec.record)
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, publisher.Publish(KindLogin))

	assert.Eventually(t, func() bool { return rec.len() == 1 }, 2*time.Second, 10*time.Millisecond)

	rec.mu.Lock()
	marker := rec.markers[0]
	rec.mu.Unlock()
	assert.Equal(t, KindLogin, marker.Kind)
	assert.Equal(t, publisher.origin, marker.Origin)
}

func TestDirMediumFiltersOwnMarkers(t *testing.T) {
	dir := t.TempDir()
	medium := newTestMedium(t, dir)

	var rec markerRecorder
	unsubscribe, err := medium.Subscribe(KindLogout, rec.record)
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, medium.Publish(KindLogout))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, rec.len(), "a process never reacts to its own marker")
}

func TestDirMediumDoesNotReplayPreexistingMarker(t *testing.T) {
	dir := t.TempDir()
	publisher := newTestMedium(t, dir)
	require.NoError(t, publisher.Publish(KindLogin))

	subscriber := newTestMedium(t, dir)
	var rec markerRecorder
	unsubscribe, err := subscriber.Subscribe(KindLogin, rec.record)
	require.NoError(t, err)
	defer unsubscribe()

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, rec.len(), "markers from before the subscription are stale")
}

func TestDirMediumLastWriteWins(t *testing.T) {
	dir := t.TempDir()
	first := newTestMedium(t, dir)
	second := newTestMedium(t, dir)
	subscriber := newTestMedium(t, dir)

	var rec markerRecorder
	unsubscribe, err := subscriber.Subscribe(KindLogin, rec.record)
	require.NoError(t, err)
	defer unsubscribe()

	// Two publishes land between two polls; only the surviving marker is seen.
	require.NoError(t, first.Publish(KindLogin))
	require.NoError(t, second.Publish(KindLogin))

	assert.Eventually(t, func() bool { return rec.len() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.markers)
	assert.Equal(t, second.origin, rec.markers[len(rec.markers)-1].Origin)
}

func TestDirMediumUnsubscribeStopsDelivery(t *testing.T) {
	dir := t.TempDir()
	publisher := newTestMedium(t, dir)
	subscriber := newTestMedium(t, dir)

	var rec markerRecorder
	unsubscribe, err := subscriber.Subscribe(KindLogout, rec.record)
	require.NoError(t, err)

	unsubscribe()
	unsubscribe() // safe to call twice

	require.NoError(t, publisher.Publish(KindLogout))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, rec.len())
}
