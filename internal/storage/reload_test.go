package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/pixil98/go-log/log"
	"github.com/pixil98/go-testutil"
)

// mockReloader implements Reloader for testing ReloadManager
type mockReloader struct {
	calls int
	err   error
}

func (m *mockReloader) Reload() error {
	m.calls++
	return m.err
}

func TestReloadManager_Tick(t *testing.T) {
	ctx := log.SetLogger(context.Background(), log.NewLogger())

	tests := map[string]struct {
		stores map[string]*mockReloader
	}{
		"no stores": {
			stores: map[string]*mockReloader{},
		},
		"single store": {
			stores: map[string]*mockReloader{
				"message": {},
			},
		},
		"multiple stores": {
			stores: map[string]*mockReloader{
				"message": {},
				"pronoun": {},
			},
		},
		"failing store does not stop the others": {
			stores: map[string]*mockReloader{
				"message": {err: fmt.Errorf("bad asset")},
				"pronoun": {},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stores := map[string]Reloader{}
			for n, s := range tt.stores {
				s.calls = 0
				stores[n] = s
			}

			rm := NewReloadManager(stores)

			err := rm.Tick(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for n, s := range tt.stores {
				testutil.AssertEqual(t, n+" reload calls", s.calls, 1)
			}
		})
	}
}
