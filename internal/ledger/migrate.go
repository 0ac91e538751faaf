package ledger

// MigrateFunc reconciles a persisted ledger against the current catalog
// size at session start. It always returns a ledger of exactly size
// entries. The strategy is injected into the session so an id-keyed
// scheme can replace the positional one without touching callers.
type MigrateFunc func(persisted Ledger, size int) Ledger

// TailMigrate is the positional strategy: it assumes catalog changes are
// appends or truncations at the tail.
//
//   - nil or absent persisted state yields a fresh ledger;
//   - equal lengths return the input unchanged;
//   - a grown catalog keeps all persisted entries and appends blanks;
//   - a shrunk catalog truncates, dropping trailing progress for good.
//
// A reordered catalog silently misaligns historical answers; that is a
// known limit of positional correlation.
func TailMigrate(persisted Ledger, size int) Ledger {
	switch {
	case persisted == nil:
		return Fresh(size)
	case len(persisted) == size:
		return persisted
	case len(persisted) < size:
		out := make(Ledger, size)
		copy(out, persisted)
		return out
	default:
		return persisted[:size]
	}
}
