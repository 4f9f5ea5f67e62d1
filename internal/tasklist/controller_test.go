package tasklist_test

import (
	"context"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotasker/internal/service"
	"gotasker/internal/tasklist"
	"gotasker/internal/testutil"
)

func TestRefreshReplacesSnapshot(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed(service.Task{Title: "a", Status: "Pending"})
	svc.Seed(service.Task{Title: "b", Status: "Pending"})

	ctrl := tasklist.New(svc)
	require.NoError(t, ctrl.Refresh(context.Background(), nil))
	require.Len(t, ctrl.Tasks(), 2)

	// The server collection changes; the next fetch replaces the
	// snapshot wholesale instead of merging.
	require.NoError(t, svc.DeleteTask(context.Background(), 1))
	svc.Seed(service.Task{Title: "c", Status: "Pending"})

	require.NoError(t, ctrl.Refresh(context.Background(), nil))
	tasks := ctrl.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Title)
	assert.Equal(t, "c", tasks[1].Title)
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed(service.Task{Title: "a", Status: "Pending"})

	ctrl := tasklist.New(svc)
	require.NoError(t, ctrl.Refresh(context.Background(), nil))

	svc.ListTasksErr = &service.APIError{Op: "fetch tasks", StatusCode: 500, Message: "Failed to fetch tasks"}
	err := ctrl.Refresh(context.Background(), nil)
	assert.EqualError(t, err, "Failed to fetch tasks")
	assert.Len(t, ctrl.Tasks(), 1)
}

func TestRefreshPassesParamsThrough(t *testing.T) {
	svc := testutil.NewFakeService()
	ctrl := tasklist.New(svc)

	params := url.Values{"status": {"Completed"}}
	require.NoError(t, ctrl.Refresh(context.Background(), params))
	assert.Equal(t, params, svc.LastParams)
}

func TestDeleteNonexistentLeavesSnapshotUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed(service.Task{Title: "a", Status: "Pending"})

	ctrl := tasklist.New(svc)
	require.NoError(t, ctrl.Refresh(context.Background(), nil))

	err := ctrl.Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, service.IsNotFound(err))
	assert.Len(t, ctrl.Tasks(), 1)
}

func TestDeleteRefetches(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.Seed(service.Task{Title: "a", Status: "Pending"})
	svc.Seed(service.Task{Title: "b", Status: "Pending"})

	ctrl := tasklist.New(svc)
	require.NoError(t, ctrl.Refresh(context.Background(), nil))

	require.NoError(t, ctrl.Delete(context.Background(), id))
	tasks := ctrl.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestSingleEditSelection(t *testing.T) {
	svc := testutil.NewFakeService()
	first := svc.Seed(service.Task{Title: "a", Status: "Pending"})
	second := svc.Seed(service.Task{Title: "b", Status: "Pending"})

	ctrl := tasklist.New(svc)
	require.NoError(t, ctrl.Refresh(context.Background(), nil))

	_, ok := ctrl.StartEdit(first)
	require.True(t, ok)

	// A new selection replaces the prior one without confirmation.
	task, ok := ctrl.StartEdit(second)
	require.True(t, ok)
	assert.Equal(t, "b", task.Title)

	editing, ok := ctrl.Editing()
	require.True(t, ok)
	assert.Equal(t, second, editing.ID)

	ctrl.CancelEdit()
	_, ok = ctrl.Editing()
	assert.False(t, ok)
}

func TestStartEditUnknownID(t *testing.T) {
	ctrl := tasklist.New(testutil.NewFakeService())
	_, ok := ctrl.StartEdit(1)
	assert.False(t, ok)
}

// blockingService serves ListTasks responses in a controlled order so
// the test can interleave two in-flight fetches.
type blockingService struct {
	testutil.FakeService
	mu      sync.Mutex
	calls   int
	started  chan struct{} // closed when the first fetch is in flight
	release  chan struct{} // lets the first fetch complete
	first    []service.Task
	firstErr error
	second   []service.Task
}

func (b *blockingService) ListTasks(ctx context.Context, params url.Values) ([]service.Task, error) {
	b.mu.Lock()
	b.calls++
	call := b.calls
	b.mu.Unlock()

	if call == 1 {
		close(b.started)
		<-b.release
		return b.first, b.firstErr
	}
	return b.second, nil
}

func TestStaleResponseDiscarded(t *testing.T) {
	svc := &blockingService{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   []service.Task{{ID: 1, Title: "stale"}},
		second:  []service.Task{{ID: 2, Title: "fresh"}},
	}
	ctrl := tasklist.New(svc)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Refresh(context.Background(), nil)
	}()

	// Wait until the first fetch is in flight, then complete a newer one.
	<-svc.started
	require.NoError(t, ctrl.Refresh(context.Background(), nil))

	close(svc.release)
	require.NoError(t, <-done)

	// The older response resolved last but must not win.
	tasks := ctrl.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "fresh", tasks[0].Title)
}

func TestStaleFetchErrorSuppressed(t *testing.T) {
	svc := &blockingService{
		started:  make(chan struct{}),
		release:  make(chan struct{}),
		firstErr: &service.APIError{Op: "fetch tasks", StatusCode: 500, Message: "Failed to fetch tasks"},
		second:   []service.Task{{ID: 2, Title: "fresh"}},
	}
	ctrl := tasklist.New(svc)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Refresh(context.Background(), nil)
	}()

	<-svc.started
	require.NoError(t, ctrl.Refresh(context.Background(), nil))
	close(svc.release)

	// The superseded fetch failed, but its error is about discarded
	// state and must not surface.
	assert.NoError(t, <-done)

	tasks := ctrl.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "fresh", tasks[0].Title)
}
