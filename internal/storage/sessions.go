package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session summarizes one run of a demo, from start to stop.
type Session struct {
	ID         int64
	SessionID  string
	DemoID     string
	Player     string
	Frames     int
	TotalTime  time.Duration // real time, including pauses
	GameTime   time.Duration // scaled time while unpaused
	BestScore  int
	FinalScene string
	CreatedAt  time.Time
}

// SessionStats aggregates the sessions of one demo.
type SessionStats struct {
	Count     int
	Frames    int
	TotalTime time.Duration
	BestScore int
}

// SaveSession records a finished session. An empty SessionID is filled
// with a new UUID. Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.SessionID == "" {
		sess.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO play_sessions
		 (session_id, demo_id, player, frames, total_ms, game_ms, best_score, final_scene)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.SessionID,
		sess.DemoID,
		sess.Player,
		sess.Frames,
		sess.TotalTime.Milliseconds(),
		sess.GameTime.Milliseconds(),
		sess.BestScore,
		sess.FinalScene,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions returns the most recent sessions, newest first.
// An empty demoID matches every demo. A non-positive limit means 20.
func (s *Store) RecentSessions(demoID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, demo_id, player, frames, total_ms, game_ms,
		        best_score, final_scene, created_at
		 FROM play_sessions
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []Session
	for rows.Next() {
		var sess Session
		var totalMS, gameMS int64
		var createdAt any

		if err := rows.Scan(
			&sess.ID,
			&sess.SessionID,
			&sess.DemoID,
			&sess.Player,
			&sess.Frames,
			&totalMS,
			&gameMS,
			&sess.BestScore,
			&sess.FinalScene,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		sess.TotalTime = time.Duration(totalMS) * time.Millisecond
		sess.GameTime = time.Duration(gameMS) * time.Millisecond
		sess.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats aggregates every session of demoID.
func (s *Store) Stats(demoID string) (SessionStats, error) {
	var st SessionStats
	var totalMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(SUM(total_ms), 0), COALESCE(MAX(best_score), 0)
		 FROM play_sessions
		 WHERE demo_id = ?`,
		demoID,
	).Scan(&st.Count, &st.Frames, &totalMS, &st.BestScore)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query session stats: %w", err)
	}

	st.TotalTime = time.Duration(totalMS) * time.Millisecond
	return st, nil
}
