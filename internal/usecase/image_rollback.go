package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

// RollbackGuard remembers media uploaded during a write operation so it can
// be deleted if the enclosing operation fails. Usage:
//
//	guard := NewRollbackGuard(media)
//	defer guard.Cleanup(ctx)
//	guard.Track(url)
//	... persist ...
//	guard.Commit()
//
// Cleanup after Commit is a no-op; Cleanup without Commit issues best-effort
// deletions and never produces an error, so the operation's original failure
// is always what propagates.
type RollbackGuard struct {
	media     domain.MediaService
	tracked   []string
	committed bool
}

func NewRollbackGuard(media domain.MediaService) *RollbackGuard {
	return &RollbackGuard{media: media}
}

// Track registers a URL as uploaded-but-not-yet-committed.
func (g *RollbackGuard) Track(url string) {
	if url != "" {
		g.tracked = append(g.tracked, url)
	}
}

// Commit disarms the guard once persistence has succeeded.
func (g *RollbackGuard) Commit() {
	g.committed = true
}

// Cleanup deletes every tracked URL unless the guard was committed.
func (g *RollbackGuard) Cleanup(ctx context.Context) {
	if g.committed || len(g.tracked) == 0 || g.media == nil {
		return
	}
	g.media.DeleteByURL(ctx, g.tracked)
}
