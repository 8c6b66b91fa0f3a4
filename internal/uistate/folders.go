package uistate

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// folderPersistenceKey is the single key server folders are stored under
// in either backend, matching the flat key-value shape of the teacher's
// keyValue package.
const folderPersistenceKey = "concord:server-folders"

// folderPersistence is the adapted form of the teacher's keyValue package
// (internal/keyValue/setup.go): the same self-contained-vs-Redis toggle,
// but backing the self-contained side with an embedded sqlite file
// instead of an in-process map, since folder groupings must survive the
// client process restarting, not just a single run.
type folderPersistence struct {
	logger *zap.SugaredLogger

	selfContained bool
	db            *sql.DB
	redisClient   *redis.Client
}

// NewSQLitePersistence opens (creating if needed) a sqlite-backed folder
// store at path.
func NewSQLitePersistence(path string, logger *zap.SugaredLogger) (*folderPersistence, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("uistate: open sqlite: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("uistate: migrate sqlite: %w", err)
	}
	return &folderPersistence{logger: logger, selfContained: true, db: db}, nil
}

// NewRedisPersistence builds a folder store backed by an existing Redis
// client, the non-self-contained side of the teacher's toggle.
func NewRedisPersistence(client *redis.Client, logger *zap.SugaredLogger) *folderPersistence {
	return &folderPersistence{logger: logger, selfContained: false, redisClient: client}
}

func (p *folderPersistence) Load() ([]Folder, error) {
	raw, err := p.get()
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var folders []Folder
	if err := json.Unmarshal([]byte(raw), &folders); err != nil {
		// A corrupted persisted blob should not block startup; fall back
		// to an empty folder set.
		p.logger.Warnf("uistate: discarding unparsable folder state: %v", err)
		return nil, nil
	}
	return folders, nil
}

func (p *folderPersistence) Save(folders []Folder) error {
	raw, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("uistate: marshal folders: %w", err)
	}
	return p.set(string(raw))
}

func (p *folderPersistence) get() (string, error) {
	if p.selfContained {
		var value string
		err := p.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, folderPersistenceKey).Scan(&value)
		if err == sql.ErrNoRows {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("uistate: read sqlite: %w", err)
		}
		return value, nil
	}

	value, err := p.redisClient.Get(context.Background(), folderPersistenceKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("uistate: read redis: %w", err)
	}
	return value, nil
}

func (p *folderPersistence) set(value string) error {
	if p.selfContained {
		_, err := p.db.Exec(
			`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			folderPersistenceKey, value,
		)
		if err != nil {
			return fmt.Errorf("uistate: write sqlite: %w", err)
		}
		return nil
	}

	if err := p.redisClient.Set(context.Background(), folderPersistenceKey, value, 0).Err(); err != nil {
		return fmt.Errorf("uistate: write redis: %w", err)
	}
	return nil
}
