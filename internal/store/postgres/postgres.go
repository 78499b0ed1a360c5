package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/points"
	"github.com/ecosort/ecosort/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users           { return &users{db: s.db} }
func (s *pgStore) Profiles() store.Profiles     { return &profiles{db: s.db} }
func (s *pgStore) WasteItems() store.WasteItems { return &wasteItems{db: s.db} }
func (s *pgStore) Tips() store.Tips             { return &tips{db: s.db} }
func (s *pgStore) Rewards() store.Rewards       { return &rewards{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, email, display_name, api_key)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, m.UserID, m.Email, m.DisplayName, m.APIKey)
	if err := row.Scan(&out.CreationTime); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrConflict
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, api_key, creation_time
        FROM users WHERE user_id=$1
    `, userID)
	return scanUser(row)
}

func (u *users) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, api_key, creation_time
        FROM users WHERE api_key=$1
    `, apiKey)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var out model.User
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.APIKey, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	row := p.db.QueryRowContext(ctx, `
        SELECT user_id, total_points, level, waste_items_count, recycled_items_count,
               achievements, notifications, location, creation_time
        FROM user_profiles WHERE user_id=$1
    `, userID)
	return scanProfile(row.Scan)
}

func (p *profiles) EnsureExists(ctx context.Context, userID string) (*model.UserProfile, error) {
	if _, err := p.db.ExecContext(ctx, `
        INSERT INTO user_profiles (user_id, total_points, level, waste_items_count, recycled_items_count, achievements, notifications)
        VALUES ($1,0,1,0,0,'[]',true)
        ON CONFLICT (user_id) DO NOTHING
    `, userID); err != nil {
		return nil, err
	}
	return p.Get(ctx, userID)
}

func (p *profiles) Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT p.user_id, p.total_points, p.level, p.waste_items_count, p.recycled_items_count,
               p.achievements, p.notifications, p.location, p.creation_time,
               COALESCE(NULLIF(u.display_name,''), NULLIF(u.email,''), 'Anonymous User')
        FROM user_profiles p
        LEFT JOIN users u ON u.user_id = p.user_id
        ORDER BY p.total_points DESC, p.creation_time ASC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		var achievements string
		if err := rows.Scan(&e.UserID, &e.TotalPoints, &e.Level, &e.WasteItemsCount, &e.RecycledItemsCount,
			&achievements, &e.Preferences.Notifications, &e.Preferences.Location, &e.CreationTime, &e.UserName); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(achievements), &e.Achievements)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func scanProfile(scan func(dest ...any) error) (*model.UserProfile, error) {
	var out model.UserProfile
	var achievements string
	if err := scan(&out.UserID, &out.TotalPoints, &out.Level, &out.WasteItemsCount, &out.RecycledItemsCount,
		&achievements, &out.Preferences.Notifications, &out.Preferences.Location, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	_ = json.Unmarshal([]byte(achievements), &out.Achievements)
	return &out, nil
}

// --- WasteItems ---

type wasteItems struct{ db *sql.DB }

func (w *wasteItems) RecordScan(ctx context.Context, item *model.WasteItem) (*model.WasteItem, error) {
	tx, err := w.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	itemID := uuid.New().String()
	out := *item
	out.ItemID = itemID
	out.IsRecycled = false

	var lat, lon *float64
	var addr *string
	if item.Location != nil {
		lat, lon, addr = &item.Location.Latitude, &item.Location.Longitude, item.Location.Address
	}
	row := tx.QueryRowContext(ctx, `
        INSERT INTO waste_items (item_id, user_id, image_id, waste_type, description, ai_analysis,
                                 recycling_tips, points_earned, is_recycled, latitude, longitude, address)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,false,$9,$10,$11)
        RETURNING creation_time
    `, itemID, item.UserID, item.ImageID, item.WasteType, item.Description, item.AIAnalysis,
		item.RecyclingTips, item.PointsEarned, lat, lon, addr)
	if err := row.Scan(&out.CreationTime); err != nil {
		return nil, err
	}

	// Create-or-update the profile atomically; level is recomputed from the
	// new total afterwards, inside the same transaction.
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO user_profiles (user_id, total_points, level, waste_items_count, recycled_items_count, achievements, notifications)
        VALUES ($1,$2,$3,1,0,'[]',true)
        ON CONFLICT (user_id) DO UPDATE SET
            total_points = user_profiles.total_points + EXCLUDED.total_points,
            waste_items_count = user_profiles.waste_items_count + 1
    `, item.UserID, item.PointsEarned, points.Level(item.PointsEarned)); err != nil {
		return nil, err
	}
	if err := recomputeLevel(ctx, tx, item.UserID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wasteItems) MarkRecycled(ctx context.Context, userID, itemID string) (int, error) {
	tx, err := w.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var owner string
	var recycled bool
	if err := tx.QueryRowContext(ctx, `
        SELECT user_id, is_recycled FROM waste_items WHERE item_id=$1 FOR UPDATE
    `, itemID).Scan(&owner, &recycled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, err
	}
	// Ownership failures look identical to missing items.
	if owner != userID {
		return 0, model.ErrNotFound
	}
	if recycled {
		return 0, model.ErrAlreadyRecycled
	}

	if _, err := tx.ExecContext(ctx, `UPDATE waste_items SET is_recycled=true WHERE item_id=$1`, itemID); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `
        UPDATE user_profiles
        SET total_points = total_points + $1, recycled_items_count = recycled_items_count + 1
        WHERE user_id=$2
    `, points.RecycleBonus, userID); err != nil {
		return 0, err
	}
	if err := recomputeLevel(ctx, tx, userID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return points.RecycleBonus, nil
}

func (w *wasteItems) GetByID(ctx context.Context, userID, itemID string) (*model.WasteItem, error) {
	row := w.db.QueryRowContext(ctx, `
        SELECT item_id, user_id, image_id, waste_type, description, ai_analysis, recycling_tips,
               points_earned, is_recycled, latitude, longitude, address, creation_time
        FROM waste_items WHERE user_id=$1 AND item_id=$2
    `, userID, itemID)
	item, err := scanWasteItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (w *wasteItems) ListByUser(ctx context.Context, userID string, limit int) ([]*model.WasteItem, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT item_id, user_id, image_id, waste_type, description, ai_analysis, recycling_tips,
               points_earned, is_recycled, latitude, longitude, address, creation_time
        FROM waste_items WHERE user_id=$1
        ORDER BY creation_time DESC, item_id
        LIMIT $2
    `, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.WasteItem
	for rows.Next() {
		item, err := scanWasteItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanWasteItem(scan func(dest ...any) error) (*model.WasteItem, error) {
	var m model.WasteItem
	var lat, lon *float64
	var addr *string
	if err := scan(&m.ItemID, &m.UserID, &m.ImageID, &m.WasteType, &m.Description, &m.AIAnalysis,
		&m.RecyclingTips, &m.PointsEarned, &m.IsRecycled, &lat, &lon, &addr, &m.CreationTime); err != nil {
		return nil, err
	}
	if lat != nil && lon != nil {
		m.Location = &model.Location{Latitude: *lat, Longitude: *lon, Address: addr}
	}
	return &m, nil
}

func recomputeLevel(ctx context.Context, tx *sql.Tx, userID string) error {
	var total int
	if err := tx.QueryRowContext(ctx, `SELECT total_points FROM user_profiles WHERE user_id=$1`, userID).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	_, err := tx.ExecContext(ctx, `UPDATE user_profiles SET level=$1 WHERE user_id=$2`, points.Level(total), userID)
	return err
}

// --- Tips ---

type tips struct{ db *sql.DB }

func (t *tips) List(ctx context.Context, wasteType *model.WasteType) ([]*model.RecyclingTip, error) {
	query := `SELECT tip_id, waste_type, title, description, difficulty, materials, steps, points_reward, tags
              FROM recycling_tips`
	args := []any{}
	if wasteType != nil {
		query += ` WHERE waste_type=$1`
		args = append(args, *wasteType)
	}
	query += ` ORDER BY seq`
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.RecyclingTip
	for rows.Next() {
		var tip model.RecyclingTip
		var materials, steps, tags string
		if err := rows.Scan(&tip.TipID, &tip.WasteType, &tip.Title, &tip.Description, &tip.Difficulty,
			&materials, &steps, &tip.PointsReward, &tags); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(materials), &tip.Materials)
		_ = json.Unmarshal([]byte(steps), &tip.Steps)
		_ = json.Unmarshal([]byte(tags), &tip.Tags)
		out = append(out, &tip)
	}
	return out, rows.Err()
}

func (t *tips) ReplaceAll(ctx context.Context, set []*model.RecyclingTip) error {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recycling_tips`); err != nil {
		return err
	}
	for i, tip := range set {
		id := tip.TipID
		if id == "" {
			id = uuid.New().String()
		}
		materials, _ := json.Marshal(tip.Materials)
		steps, _ := json.Marshal(tip.Steps)
		tags, _ := json.Marshal(tip.Tags)
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO recycling_tips (tip_id, waste_type, title, description, difficulty, materials, steps, points_reward, tags, seq)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        `, id, tip.WasteType, tip.Title, tip.Description, tip.Difficulty, string(materials), string(steps), tip.PointsReward, string(tags), i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// --- Rewards ---

type rewards struct{ db *sql.DB }

func (r *rewards) ListActive(ctx context.Context) ([]*model.Reward, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT reward_id, title, description, points_cost, category, is_active, image_url
        FROM rewards WHERE is_active ORDER BY seq
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Reward
	for rows.Next() {
		var rw model.Reward
		if err := rows.Scan(&rw.RewardID, &rw.Title, &rw.Description, &rw.PointsCost, &rw.Category, &rw.IsActive, &rw.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, &rw)
	}
	return out, rows.Err()
}

func (r *rewards) ReplaceAll(ctx context.Context, set []*model.Reward) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rewards`); err != nil {
		return err
	}
	for i, rw := range set {
		id := rw.RewardID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO rewards (reward_id, title, description, points_cost, category, is_active, image_url, seq)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        `, id, rw.Title, rw.Description, rw.PointsCost, rw.Category, rw.IsActive, rw.ImageURL, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}
