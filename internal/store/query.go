package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

func (r *eventRepo) ListSessions(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	query := `SELECT sequence, timestamp, session_id, action, topics,
	                 questions_served, correct_answers, duration_secs
	          FROM session_events`
	where, args := buildWhere(opts, "")
	query += where + " ORDER BY sequence ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	// Merge start/end pairs by session id, preserving start order.
	byID := make(map[string]*SessionSummary)
	var order []string

	for rows.Next() {
		var (
			seq, ts                         int64
			sessionID, action, topicsJSON   string
			served, correctCount, durationS int
		)
		if err := rows.Scan(&seq, &ts, &sessionID, &action, &topicsJSON, &served, &correctCount, &durationS); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}

		sum, ok := byID[sessionID]
		if !ok {
			sum = &SessionSummary{SessionID: sessionID}
			byID[sessionID] = sum
			order = append(order, sessionID)
		}

		when := time.Unix(ts, 0).UTC()
		switch action {
		case SessionStart:
			sum.StartedAt = when
			var topics []string
			if err := json.Unmarshal([]byte(topicsJSON), &topics); err == nil {
				sum.Topics = topics
			}
		case SessionEnd, SessionAbandon:
			sum.EndedAt = when
			sum.QuestionsServed = served
			sum.CorrectAnswers = correctCount
			sum.DurationSecs = durationS
			sum.Completed = action == SessionEnd
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}

	// order follows the sequence of each session's first event, so
	// reversing it yields newest first.
	out := make([]SessionSummary, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, *byID[order[i]])
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *eventRepo) ListAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error) {
	query := `SELECT sequence, timestamp, session_id, topic, question_text, question_source,
	                 format, correct_answer, learner_answer, correct, score, time_ms
	          FROM answer_events`
	where, args := buildWhere(opts, opts.Topic)
	query += where + " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var (
			rec        AnswerRecord
			ts         int64
			correctInt int
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Topic, &rec.QuestionText,
			&rec.QuestionSource, &rec.Format, &rec.CorrectAnswer, &rec.LearnerAnswer,
			&correctInt, &rec.Score, &rec.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0).UTC()
		rec.Correct = correctInt != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) TallyAnswers(ctx context.Context) (map[string]TopicTally, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, COUNT(*), SUM(correct), MAX(timestamp)
		 FROM answer_events GROUP BY topic`)
	if err != nil {
		return nil, fmt.Errorf("tally answers: %w", err)
	}
	defer rows.Close()

	out := make(map[string]TopicTally)
	for rows.Next() {
		var (
			topic             string
			attempts, correct int
			lastTS            int64
		)
		if err := rows.Scan(&topic, &attempts, &correct, &lastTS); err != nil {
			return nil, fmt.Errorf("scan tally: %w", err)
		}
		out[topic] = TopicTally{
			Attempts:     attempts,
			Correct:      correct,
			LastAnswered: time.Unix(lastTS, 0).UTC(),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tallies: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AnswerTimesSince(ctx context.Context, from time.Time) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT timestamp FROM answer_events WHERE timestamp >= ? ORDER BY timestamp ASC`,
		from.UTC().Unix())
	if err != nil {
		return nil, fmt.Errorf("query answer times: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan answer time: %w", err)
		}
		out = append(out, time.Unix(ts, 0).UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer times: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, topic string) (time.Time, error) {
	var ts sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(timestamp) FROM answer_events WHERE topic = ?`, topic).Scan(&ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	return time.Unix(ts.Int64, 0).UTC(), nil
}

func (r *eventRepo) CompletedChallenges(ctx context.Context) (map[int]bool, error) {
	// Latest completed/reopened action per challenge decides the state.
	rows, err := r.db.QueryContext(ctx,
		`SELECT challenge_id, action FROM challenge_events
		 WHERE action IN (?, ?) ORDER BY sequence ASC`,
		ChallengeCompleted, ChallengeReopened)
	if err != nil {
		return nil, fmt.Errorf("query challenge events: %w", err)
	}
	defer rows.Close()

	out := make(map[int]bool)
	for rows.Next() {
		var (
			id     int
			action string
		)
		if err := rows.Scan(&id, &action); err != nil {
			return nil, fmt.Errorf("scan challenge event: %w", err)
		}
		out[id] = action == ChallengeCompleted
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenge events: %w", err)
	}

	for id, done := range out {
		if !done {
			delete(out, id)
		}
	}
	return out, nil
}

func (r *eventRepo) StudyCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT guide_slug, COUNT(*) FROM study_events WHERE action = ? GROUP BY guide_slug`,
		StudyOpened)
	if err != nil {
		return nil, fmt.Errorf("query study counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			slug  string
			count int
		)
		if err := rows.Scan(&slug, &count); err != nil {
			return nil, fmt.Errorf("scan study count: %w", err)
		}
		out[slug] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study counts: %w", err)
	}
	return out, nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	query := `SELECT id, sequence, timestamp, provider, model, purpose,
	                 input_tokens, output_tokens, latency_ms, success, error_message,
	                 request_body, response_body
	          FROM llm_events ORDER BY sequence DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		rec, err := scanLLMRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, timestamp, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message,
		        request_body, response_body
		 FROM llm_events WHERE id = ?`, id)

	rec, err := scanLLMRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("llm request not found: %d", id)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens), AVG(latency_ms)
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var (
			s   LLMUsageStats
			avg float64
		)
		if err := rows.Scan(&s.Purpose, &s.Calls, &s.InputTokens, &s.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		s.AvgLatencyMs = int64(avg)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm usage: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		 FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query llm model usage: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm model usage: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm model usage: %w", err)
	}
	return out, nil
}

func scanLLMRecord(scan func(...any) error) (LLMRequestRecord, error) {
	var (
		rec        LLMRequestRecord
		ts         int64
		successInt int
	)
	err := scan(&rec.ID, &rec.Sequence, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &successInt,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan llm event: %w", err)
	}
	rec.Timestamp = time.Unix(ts, 0).UTC()
	rec.Success = successInt != 0
	return rec, nil
}

// buildWhere translates QueryOpts into a WHERE clause. topic filters
// on the topic column when non-empty.
func buildWhere(opts QueryOpts, topic string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, opts.From.UTC().Unix())
	}
	if !opts.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, opts.To.UTC().Unix())
	}
	if topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, topic)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
