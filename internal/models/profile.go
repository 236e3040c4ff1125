package models

// UserProfile is the single local user. At most one profile exists at a time;
// a nil profile means nobody is logged in. LastSync is the epoch-millisecond
// timestamp of the last successful cloud push, zero if never synced.
type UserProfile struct {
	Username string `json:"username"`
	LastSync int64  `json:"lastSync,omitempty"`
}

// Snapshot is the in-memory pair (card list, profile) at a point in time, as
// pushed to cloud sync or written to a dossier document.
type Snapshot struct {
	Cards []CombatCard
	User  *UserProfile
}
