package sqlite

import "database/sql"

// EnsureSchema creates all tables if they do not exist. SQLite is the local
// and test driver, so the adapter owns its schema; the postgres schema is
// applied by deployment migrations.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id TEXT PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            display_name TEXT,
            api_key TEXT NOT NULL UNIQUE,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
            user_id TEXT PRIMARY KEY,
            total_points INTEGER NOT NULL DEFAULT 0,
            level INTEGER NOT NULL DEFAULT 1,
            waste_items_count INTEGER NOT NULL DEFAULT 0,
            recycled_items_count INTEGER NOT NULL DEFAULT 0,
            achievements TEXT NOT NULL DEFAULT '[]',
            notifications INTEGER NOT NULL DEFAULT 1,
            location TEXT,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_points ON user_profiles(total_points DESC);`,
		`CREATE TABLE IF NOT EXISTS waste_items (
            item_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            image_id TEXT,
            waste_type TEXT NOT NULL,
            description TEXT NOT NULL,
            ai_analysis TEXT,
            recycling_tips TEXT,
            points_earned INTEGER NOT NULL,
            is_recycled INTEGER NOT NULL DEFAULT 0,
            latitude REAL,
            longitude REAL,
            address TEXT,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_waste_items_user ON waste_items(user_id, creation_time DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_waste_items_type ON waste_items(waste_type);`,
		`CREATE TABLE IF NOT EXISTS recycling_tips (
            tip_id TEXT PRIMARY KEY,
            waste_type TEXT NOT NULL,
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            difficulty TEXT NOT NULL,
            materials TEXT NOT NULL DEFAULT '[]',
            steps TEXT NOT NULL DEFAULT '[]',
            points_reward INTEGER NOT NULL DEFAULT 0,
            tags TEXT NOT NULL DEFAULT '[]',
            seq INTEGER NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_recycling_tips_type ON recycling_tips(waste_type);`,
		`CREATE TABLE IF NOT EXISTS rewards (
            reward_id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            points_cost INTEGER NOT NULL,
            category TEXT NOT NULL,
            is_active INTEGER NOT NULL DEFAULT 1,
            image_url TEXT,
            seq INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS user_rewards (
            user_reward_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            reward_id TEXT NOT NULL,
            redeemed_at TIMESTAMP NOT NULL,
            status TEXT NOT NULL
        );`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
