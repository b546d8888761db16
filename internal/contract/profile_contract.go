package contract

import "phhblog/internal/domain/entity"

// ProfilePage carries the author's profile record. Profile is nil
// when no user row exists; the template renders an empty state
// instead of dereferencing it.
type ProfilePage struct {
	Profile *entity.Profile
}
