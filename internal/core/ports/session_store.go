package ports

import "github.com/huellitas/adoption-client/internal/core/domain"

// SessionStore persists the single client session across process runs.
// Load with no stored session returns (nil, nil); Clear is idempotent.
type SessionStore interface {
	Load() (*domain.Session, error)
	Save(session *domain.Session) error
	Clear() error
}
