package trainer

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/example/frasebot/internal/adaptive"
	"github.com/example/frasebot/internal/history"
	"github.com/example/frasebot/internal/spaced_repetition"
	"github.com/example/frasebot/internal/textmatch"
	"github.com/example/frasebot/pkg/models"
	"github.com/google/uuid"
)

// Result is the outcome of judging one submitted answer
type Result struct {
	Phrase   models.Phrase
	Answer   string
	Correct  bool
	Expected string
}

// Config tunes a trainer session. Zero values get sensible defaults.
type Config struct {
	Match      textmatch.Config
	StartLevel string
	// SelectorSeed fixes the selection randomness; zero seeds from the clock
	SelectorSeed int64
	// Now supplies the clock; nil uses time.Now
	Now func() time.Time

	// Presentation callbacks, all optional
	OnItemSelected func(phrase models.Phrase, dueDate string)
	OnAnswerJudged func(res Result)
	OnStatsChanged func(stats models.SessionStats)
}

// Trainer owns one learner's session: the catalog, the review records, the
// history log and the adaptive difficulty tier. All state is explicit and
// mutation happens only through its methods, one user action at a time.
type Trainer struct {
	catalog  []models.Phrase
	records  map[int]*models.ReviewRecord
	log      *history.Log
	level    *adaptive.Controller
	sm2      *spaced_repetition.SM2
	selector *spaced_repetition.Selector
	store    Store
	cfg      Config
	now      func() time.Time

	sessionID string
	current   *models.Phrase
}

// New creates a session over the given catalog, restoring review records and
// history from the store. An empty catalog is fatal; unreadable persisted
// state is not, the session simply starts fresh.
func New(catalog []models.Phrase, store Store, cfg Config) (*Trainer, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("no phrases loaded: cannot start a session")
	}
	if cfg.Match == (textmatch.Config{}) {
		cfg.Match = textmatch.DefaultConfig()
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	records, err := store.LoadRecords()
	if err != nil || records == nil {
		if err != nil {
			log.Printf("Could not load review records, starting fresh: %v", err)
		}
		records = make(map[int]*models.ReviewRecord)
	}

	entries, err := store.LoadHistory(history.MaxEntries)
	if err != nil {
		log.Printf("Could not load history, starting fresh: %v", err)
		entries = nil
	}

	selector := spaced_repetition.NewSelector()
	if cfg.SelectorSeed != 0 {
		selector = spaced_repetition.NewSelectorWithSeed(cfg.SelectorSeed)
	}

	return &Trainer{
		catalog:   catalog,
		records:   records,
		log:       history.Restore(entries),
		level:     adaptive.New(cfg.StartLevel),
		sm2:       spaced_repetition.NewSM2(),
		selector:  selector,
		store:     store,
		cfg:       cfg,
		now:       nowFn,
		sessionID: uuid.New().String(),
	}, nil
}

// SessionID returns the identifier stamped into history entries and exports
func (t *Trainer) SessionID() string {
	return t.sessionID
}

// CurrentLevel returns the adaptive difficulty tier
func (t *Trainer) CurrentLevel() string {
	return t.level.CurrentLevel()
}

// Current returns the phrase awaiting an answer, if any
func (t *Trainer) Current() (models.Phrase, bool) {
	if t.current == nil {
		return models.Phrase{}, false
	}
	return *t.current, true
}

// Next selects the phrase to present: a weighted draw over the due set, or a
// level-biased uniform draw when nothing is due.
func (t *Trainer) Next() (models.Phrase, error) {
	today := t.today()
	p, ok := t.selector.SelectNext(t.catalog, t.records, today, t.level.CurrentLevel())
	if !ok {
		return models.Phrase{}, fmt.Errorf("no phrases available")
	}
	t.current = &p

	if cb := t.cfg.OnItemSelected; cb != nil {
		cb(p, t.records[p.ID].DueDate)
	}
	return p, nil
}

// Submit judges the answer for the current phrase, updates its review record,
// feeds the adaptive window and logs the interaction. Persistence failures
// are logged and swallowed; losing a write never blocks the session.
func (t *Trainer) Submit(answer string) (Result, error) {
	if t.current == nil {
		return Result{}, fmt.Errorf("no phrase selected")
	}
	phrase := *t.current
	now := t.now()
	today := now.Format(models.DateLayout)

	correct := textmatch.Judge(answer, phrase.TargetText, t.cfg.Match)

	rec := spaced_repetition.EnsureRecord(t.records, phrase.ID, today)
	t.sm2.Process(rec, correct, today, now)
	if err := t.store.SaveRecord(rec); err != nil {
		log.Printf("Failed to persist record for phrase %d: %v", phrase.ID, err)
	}

	t.level.RecordOutcome(correct)
	t.appendHistory(models.HistoryEntry{
		Timestamp:  now.Format(time.RFC3339),
		SessionID:  t.sessionID,
		PhraseID:   phrase.ID,
		SourceText: phrase.SourceText,
		TargetText: phrase.TargetText,
		UserAnswer: answer,
		Correct:    correct,
		Level:      phrase.Level,
	})

	t.current = nil
	res := Result{Phrase: phrase, Answer: answer, Correct: correct, Expected: phrase.TargetText}
	if cb := t.cfg.OnAnswerJudged; cb != nil {
		cb(res)
	}
	t.notifyStats()
	return res, nil
}

// Skip records that the current phrase was passed over without an answer.
// The review record is untouched.
func (t *Trainer) Skip() error {
	if t.current == nil {
		return fmt.Errorf("no phrase selected")
	}
	phrase := *t.current
	t.appendHistory(models.HistoryEntry{
		Timestamp:  t.now().Format(time.RFC3339),
		SessionID:  t.sessionID,
		PhraseID:   phrase.ID,
		SourceText: phrase.SourceText,
		TargetText: phrase.TargetText,
		Skipped:    true,
		Level:      phrase.Level,
	})
	t.current = nil
	return nil
}

// Preview returns the phrase with the earliest due date without selecting it.
// Unlike Next it is deterministic and leaves the pending selection alone.
func (t *Trainer) Preview() (models.Phrase, bool) {
	return spaced_repetition.EarliestDue(t.catalog, t.records, t.today())
}

// Stats reports the due count and today's answer tally
func (t *Trainer) Stats() models.SessionStats {
	today := t.today()
	due := 0
	struggling := 0
	for _, p := range t.catalog {
		rec := spaced_repetition.EnsureRecord(t.records, p.ID, today)
		if rec.DueDate <= today {
			due++
		}
		if rec.Lapses >= 2 {
			struggling++
		}
	}
	return models.SessionStats{
		DueToday:     due,
		TotalPhrases: len(t.catalog),
		Struggling:   struggling,
		Today:        t.log.DailyStats(today),
	}
}

// History returns a copy of the interaction log, newest first
func (t *Trainer) History() []models.HistoryEntry {
	return t.log.Entries()
}

// Snapshot is the exportable read-only view of the session state
type Snapshot struct {
	ExportedAt string                       `json:"exported_at"`
	SessionID  string                       `json:"session_id"`
	Level      adaptive.State               `json:"level"`
	Records    map[int]*models.ReviewRecord `json:"records"`
	History    []models.HistoryEntry        `json:"history"`
}

// Export serializes the full record mapping and history into one JSON
// document. It has no effect on live state.
func (t *Trainer) Export() ([]byte, error) {
	snap := Snapshot{
		ExportedAt: t.now().Format(time.RFC3339),
		SessionID:  t.sessionID,
		Level:      t.level.Snapshot(),
		Records:    t.records,
		History:    t.log.Entries(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %v", err)
	}
	return data, nil
}

// Reset clears all persisted state and reinitializes every review record to
// its defaults. The adaptive tier returns to the configured start level.
func (t *Trainer) Reset() error {
	if err := t.store.Reset(); err != nil {
		return fmt.Errorf("failed to clear persisted state: %v", err)
	}

	today := t.today()
	t.records = make(map[int]*models.ReviewRecord, len(t.catalog))
	for _, p := range t.catalog {
		t.records[p.ID] = spaced_repetition.NewRecord(p.ID, today)
	}
	t.log.Clear()
	t.level = adaptive.New(t.cfg.StartLevel)
	t.current = nil

	t.notifyStats()
	return nil
}

func (t *Trainer) today() string {
	return t.now().Format(models.DateLayout)
}

func (t *Trainer) appendHistory(entry models.HistoryEntry) {
	t.log.Append(entry)
	if err := t.store.AppendHistory(entry); err != nil {
		log.Printf("Failed to persist history entry for phrase %d: %v", entry.PhraseID, err)
	}
}

func (t *Trainer) notifyStats() {
	if cb := t.cfg.OnStatsChanged; cb != nil {
		cb(t.Stats())
	}
}
