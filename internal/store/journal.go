package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/maturapolski/matura/ent"
	"github.com/maturapolski/matura/ent/answerlog"
	"github.com/maturapolski/matura/ent/predicate"
	"github.com/maturapolski/matura/ent/sessionlog"
	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/session"
)

// Journal appends answers and finished sessions. It implements
// session.Recorder.
type Journal struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ session.Recorder = (*Journal)(nil)

// RecordAnswer appends one submitted answer.
func (j *Journal) RecordAnswer(ctx context.Context, rec session.AnswerRecord) error {
	seqNum, err := j.seq.Next(ctx)
	if err != nil {
		return err
	}

	err = j.client.AnswerLog.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.At.UTC()).
		SetSessionID(rec.SessionID).
		SetExerciseID(rec.ExerciseID).
		SetKind(string(rec.Kind)).
		SetCategory(string(rec.Category)).
		SetScore(rec.Score).
		SetOutcome(rec.Outcome.String()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

// RecordSession appends a finished session. Recording the same session id
// twice keeps the later stats.
func (j *Journal) RecordSession(ctx context.Context, rec session.SessionRecord) error {
	// Taken before the transaction: the counter needs the single connection.
	seqNum, err := j.seq.Next(ctx)
	if err != nil {
		return err
	}

	tx, err := j.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}

	if _, err := tx.SessionLog.Delete().Where(sessionlog.SessionID(rec.SessionID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("replace session: %w", err)
	}

	create := tx.SessionLog.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.EndedAt.UTC()).
		SetSessionID(rec.SessionID).
		SetCompleted(rec.Stats.Completed).
		SetCorrect(rec.Stats.Correct).
		SetMaxStreak(rec.Stats.MaxStreak).
		SetPoints(rec.Stats.Points).
		SetTimeSpent(rec.Stats.TimeSpent)
	if !rec.StartedAt.IsZero() {
		create.SetStartedAt(rec.StartedAt.UTC())
	}
	if err := create.Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save session: %w", err)
	}
	return tx.Commit()
}

// RecentSessions returns finished sessions, newest first.
func (j *Journal) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionEntry, error) {
	var preds []predicate.SessionLog
	if !opts.From.IsZero() {
		preds = append(preds, sessionlog.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, sessionlog.TimestampLTE(opts.To.UTC()))
	}

	q := j.client.SessionLog.Query().
		Where(preds...).
		Order(ent.Desc(sessionlog.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]SessionEntry, 0, len(rows))
	for _, r := range rows {
		e := SessionEntry{
			Sequence:  r.Sequence,
			SessionID: r.SessionID,
			Completed: r.Completed,
			Correct:   r.Correct,
			MaxStreak: r.MaxStreak,
			Points:    r.Points,
			TimeSpent: r.TimeSpent,
			EndedAt:   r.Timestamp,
		}
		if r.StartedAt != nil {
			e.StartedAt = *r.StartedAt
		}
		out = append(out, e)
	}
	return out, nil
}

// SessionAnswers returns the answers of one session in submission order.
func (j *Journal) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEntry, error) {
	rows, err := j.client.AnswerLog.Query().
		Where(answerlog.SessionID(sessionID)).
		Order(ent.Asc(answerlog.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	out := make([]AnswerEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAnswerEntry(r))
	}
	return out, nil
}

// CategoryTotals aggregates answers per category, ordered by category.
func (j *Journal) CategoryTotals(ctx context.Context, opts QueryOpts) ([]CategoryTotal, error) {
	var preds []predicate.AnswerLog
	if !opts.From.IsZero() {
		preds = append(preds, answerlog.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, answerlog.TimestampLTE(opts.To.UTC()))
	}

	rows, err := j.client.AnswerLog.Query().
		Where(preds...).
		Select(answerlog.FieldCategory, answerlog.FieldScore).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query category totals: %w", err)
	}

	byCat := make(map[string]*CategoryTotal)
	for _, r := range rows {
		t, ok := byCat[r.Category]
		if !ok {
			t = &CategoryTotal{Category: r.Category}
			byCat[r.Category] = t
		}
		t.Answered++
		if r.Score > 0 {
			t.Correct++
		}
		t.Points += r.Score
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for _, t := range byCat {
		out = append(out, *t)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Category < out[b].Category })
	return out, nil
}

func toAnswerEntry(r *ent.AnswerLog) AnswerEntry {
	return AnswerEntry{
		Sequence:   r.Sequence,
		SessionID:  r.SessionID,
		ExerciseID: r.ExerciseID,
		Kind:       r.Kind,
		Category:   r.Category,
		Score:      r.Score,
		Outcome:    r.Outcome,
		AnsweredAt: r.Timestamp,
	}
}

// SaveFilters snapshots the filters in use so the next run can restore them.
func (s *Store) SaveFilters(ctx context.Context, f session.Filters) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}
	repo := s.SnapshotRepo()
	err = repo.Save(ctx, &Snapshot{
		Sequence:  seqNum,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version: 1,
			LastFilters: &FiltersData{
				Type:       string(f.Type),
				Category:   string(f.Category),
				Epoch:      f.Epoch,
				Difficulty: f.Difficulty,
			},
		},
	})
	if err != nil {
		return err
	}
	return repo.Prune(ctx, 5)
}

// LastFilters returns the most recently saved filters, zero when none.
func (s *Store) LastFilters(ctx context.Context) (session.Filters, error) {
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil || snap == nil || snap.Data.LastFilters == nil {
		return session.Filters{}, err
	}
	lf := snap.Data.LastFilters
	return session.Filters{
		Type:       exercise.Kind(lf.Type),
		Category:   exercise.Category(lf.Category),
		Epoch:      lf.Epoch,
		Difficulty: lf.Difficulty,
	}, nil
}
