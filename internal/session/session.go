// Package session owns the live quiz state: one catalog, one answer
// ledger, the active view mode, search query and cursor. All user
// actions dispatch through here; every ledger mutation is flushed to
// the persistence backend before the dispatcher returns.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ledger"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/view"
)

// persistTimeout bounds a single storage write. A slow or failing write
// degrades cross-session durability only, never the in-memory state.
const persistTimeout = 2 * time.Second

// Options configures a session. Blobs is required; everything else has
// a working default.
type Options struct {
	Blobs      store.BlobRepo
	SessionLog store.SessionLogRepo // optional, appended on Close
	Migrate    ledger.MigrateFunc   // defaults to ledger.TailMigrate
	Logger     *zap.Logger          // defaults to zap.NewNop()
}

// Session is the authoritative holder of answer state for one run of
// the app. It is confined to a single event loop; methods are not safe
// for concurrent use.
type Session struct {
	id      string
	started time.Time

	cat    catalog.Catalog
	led    ledger.Ledger
	mode   view.Mode
	query  string
	cursor int

	blobs  store.BlobRepo
	seslog store.SessionLogRepo
	logger *zap.Logger
}

// Start loads the catalog through loader, reconciles persisted answer
// state against it and returns a ready session. A catalog failure is
// fatal; a persistence read failure only means starting fresh.
func Start(ctx context.Context, loader catalog.Loader, opts Options) (*Session, error) {
	cat, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	migrate := opts.Migrate
	if migrate == nil {
		migrate = ledger.TailMigrate
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var persisted ledger.Ledger
	if blob, ok, err := opts.Blobs.Get(ctx, store.LedgerKey); err != nil {
		logger.Warn("read answer blob failed, starting fresh", zap.Error(err))
	} else if ok {
		persisted, err = ledger.Decode(blob)
		if err != nil {
			logger.Warn("stored answer blob is corrupt, starting fresh", zap.Error(err))
			persisted = nil
		}
	}

	return &Session{
		id:      uuid.NewString(),
		started: time.Now(),
		cat:     cat,
		led:     migrate(persisted, cat.Len()),
		blobs:   opts.Blobs,
		seslog:  opts.SessionLog,
		logger:  logger,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Catalog returns the immutable question list.
func (s *Session) Catalog() catalog.Catalog { return s.cat }

// Ledger returns the current answer snapshot.
func (s *Session) Ledger() ledger.Ledger { return s.led }

// Mode returns the active view mode.
func (s *Session) Mode() view.Mode { return s.mode }

// Query returns the active search query.
func (s *Session) Query() string { return s.query }

// Cursor returns the catalog index currently presented.
func (s *Session) Cursor() int { return s.cursor }

// Summary recomputes the aggregate counts and scores.
func (s *Session) Summary() view.Summary {
	return view.Aggregate(s.cat, s.led)
}

// VisibleIndices recomputes the catalog indices in scope.
func (s *Session) VisibleIndices() []int {
	return view.VisibleIndices(s.cat, s.led, s.mode, s.query)
}

// Position returns the cursor's position within the visible set, or -1.
func (s *Session) Position() int {
	return view.Position(s.cursor, s.VisibleIndices())
}

// PrevTarget returns the catalog index preceding the cursor in the view.
func (s *Session) PrevTarget() (int, bool) {
	return view.PrevTarget(s.cursor, s.VisibleIndices())
}

// NextTarget returns the catalog index following the cursor in the view.
func (s *Session) NextTarget() (int, bool) {
	return view.NextTarget(s.cursor, s.VisibleIndices())
}

// Select records a choice for question i without grading it.
func (s *Session) Select(i int, label string) error {
	if !s.cat.InRange(i) {
		return fmt.Errorf("select: index %d out of range", i)
	}
	s.led = s.led.Select(i, label)
	s.persist()
	return nil
}

// Submit grades question i against its correct label. It returns
// ledger.ErrNoSelection, with no state change, when nothing is selected.
func (s *Session) Submit(i int) error {
	if !s.cat.InRange(i) {
		return fmt.Errorf("submit: index %d out of range", i)
	}
	next, err := s.led.Submit(i, s.cat.Question(i).Answer.Label)
	if err != nil {
		return err
	}
	s.led = next
	s.persist()
	return nil
}

// Reset clears question i back to unanswered.
func (s *Session) Reset(i int) error {
	if !s.cat.InRange(i) {
		return fmt.Errorf("reset: index %d out of range", i)
	}
	s.led = s.led.Reset(i)
	s.persist()
	return nil
}

// ClearAll wipes every answer and removes the stored blob outright, so
// no stale partial write is left behind.
func (s *Session) ClearAll() {
	s.led = ledger.Fresh(s.cat.Len())

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.blobs.Remove(ctx, store.LedgerKey); err != nil {
		s.logger.Warn("remove answer blob failed", zap.Error(err))
	}
}

// GoPrevious moves the cursor to the previous visible question. It is a
// silent no-op when there is none.
func (s *Session) GoPrevious() {
	if target, ok := s.PrevTarget(); ok {
		s.cursor = target
	}
}

// GoNext moves the cursor to the next visible question. It is a silent
// no-op when there is none.
func (s *Session) GoNext() {
	if target, ok := s.NextTarget(); ok {
		s.cursor = target
	}
}

// Jump moves the cursor to any valid catalog index, including ones
// outside the current view; the filter restricts prev/next sequencing,
// not jumps.
func (s *Session) Jump(i int) error {
	if !s.cat.InRange(i) {
		return fmt.Errorf("jump: index %d out of range", i)
	}
	s.cursor = i
	return nil
}

// ToggleMode flips between all and wrong-only. Entering wrong-only is
// refused (returning false) while no wrong entries exist; on entry the
// cursor is pulled to the first wrong question if it is out of scope.
func (s *Session) ToggleMode() bool {
	if s.mode == view.ModeWrongOnly {
		s.mode = view.ModeAll
		return true
	}
	wrong := view.WrongIndices(s.led)
	if len(wrong) == 0 {
		return false
	}
	s.mode = view.ModeWrongOnly
	s.cursor = view.AutoCorrect(s.cursor, wrong)
	return true
}

// SetSearchQuery replaces the active search query.
func (s *Session) SetSearchQuery(q string) {
	s.query = q
}

// ClearSearch removes the active search query.
func (s *Session) ClearSearch() {
	s.query = ""
}

// Close appends this session to the session log. The in-memory state
// needs no teardown; persisted answers were flushed on every mutation.
func (s *Session) Close(ctx context.Context) {
	if s.seslog == nil {
		return
	}
	sum := s.Summary()
	rec := store.SessionRecord{
		ID:         s.id,
		StartedAt:  s.started,
		FinishedAt: time.Now(),
		Answered:   sum.Answered,
		Correct:    sum.Correct,
		Wrong:      sum.Wrong,
		TotalScore: sum.TotalScore,
	}
	if err := s.seslog.Append(ctx, rec); err != nil {
		s.logger.Warn("append session log failed", zap.Error(err))
	}
}

// persist flushes the current ledger to storage. Failures are logged
// and swallowed: the in-memory mutation already succeeded and a lost
// write costs durability only.
func (s *Session) persist() {
	blob, err := ledger.Encode(s.led)
	if err != nil {
		s.logger.Warn("encode ledger failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.blobs.Set(ctx, store.LedgerKey, blob); err != nil {
		s.logger.Warn("write answer blob failed", zap.Error(err))
	}
}
