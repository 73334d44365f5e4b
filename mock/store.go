package mock

import (
	"context"

	"github.com/fwojciec/docsync"
)

var _ docsync.DocStore = (*DocStore)(nil)

// DocStore is a mock implementation of docsync.DocStore.
type DocStore struct {
	EnsureDirFn func(ctx context.Context) error
	SaveFn      func(ctx context.Context, filename, content string) error
}

func (s *DocStore) EnsureDir(ctx context.Context) error {
	return s.EnsureDirFn(ctx)
}

func (s *DocStore) Save(ctx context.Context, filename, content string) error {
	return s.SaveFn(ctx, filename, content)
}
