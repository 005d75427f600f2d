package smblevels

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/smblevels/enemy"
	"github.com/bodgit/smblevels/header"
	"github.com/bodgit/smblevels/object"
	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// LevelDB is a sqlite catalog of decoded levels
type LevelDB struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewLevelDB opens or creates the catalog in file
func NewLevelDB(file string) (*LevelDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS level (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL, name TEXT NOT NULL, header BLOB NOT NULL, objects BLOB NOT NULL, enemies BLOB NOT NULL, UNIQUE(crc, name))"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS object (level_id INTEGER NOT NULL, position INTEGER NOT NULL, kind TEXT NOT NULL, param INTEGER NOT NULL, x INTEGER NOT NULL, y INTEGER NOT NULL, page INTEGER NOT NULL, FOREIGN KEY(level_id) REFERENCES level(id) ON DELETE CASCADE)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS enemy (level_id INTEGER NOT NULL, position INTEGER NOT NULL, kind TEXT NOT NULL, param INTEGER NOT NULL, hard INTEGER NOT NULL, x INTEGER NOT NULL, y INTEGER NOT NULL, page INTEGER NOT NULL, FOREIGN KEY(level_id) REFERENCES level(id) ON DELETE CASCADE)"); err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &LevelDB{
		db:  db,
		enc: enc,
		dec: dec,
	}, nil
}

// Close closes the catalog
func (db *LevelDB) Close() error {
	db.dec.Close()
	if err := db.enc.Close(); err != nil {
		return err
	}
	return db.db.Close()
}

// Raw holds the undecoded bytes of a level. Object and enemy data are
// stored zstd compressed.
type Raw struct {
	Header  []byte
	Objects []byte
	Enemies []byte
}

// RawLevel trims the regions a level was decoded from down to the bytes it
// actually used, sentinels included
func RawLevel(level *Level, headerBytes, objectBytes, enemyBytes []byte) Raw {
	return Raw{
		Header:  headerBytes[:header.Size],
		Objects: objectBytes[:object.Size(level.Objects)],
		Enemies: enemyBytes[:enemy.Size(level.Enemies)],
	}
}

// Store records a decoded level under the image CRC and name, replacing
// any earlier copy
func (db *LevelDB) Store(crc, name string, level *Level, raw Raw) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM level WHERE crc = ? AND name = ?", crc, name); err != nil {
		return err
	}

	result, err := tx.Exec("INSERT INTO level (crc, name, header, objects, enemies) VALUES (?, ?, ?, ?, ?)", crc, name, raw.Header, db.enc.EncodeAll(raw.Objects, nil), db.enc.EncodeAll(raw.Enemies, nil))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, o := range level.Objects {
		if _, err := tx.Exec("INSERT INTO object (level_id, position, kind, param, x, y, page) VALUES (?, ?, ?, ?, ?, ?, ?)", id, o.Offset, o.Kind.String(), o.Param, o.X, o.Y, o.Page); err != nil {
			return err
		}
	}

	for _, e := range level.Enemies {
		if _, err := tx.Exec("INSERT INTO enemy (level_id, position, kind, param, hard, x, y, page) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", id, e.Offset, e.Kind.String(), e.Param, e.HardMode, e.X, e.Y, e.Page); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (db *LevelDB) levelID(crc, name string) (int64, bool, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM level WHERE crc = ? AND name = ?", crc, name).Scan(&id); err {
	case sql.ErrNoRows:
		return 0, false, nil
	case nil:
		return id, true, nil
	default:
		return 0, false, err
	}
}

// Counts returns the number of objects and enemies stored for a level
func (db *LevelDB) Counts(crc, name string) (objects, enemies int, err error) {
	id, ok, err := db.levelID(crc, name)
	if err != nil || !ok {
		return 0, 0, err
	}

	if err := db.db.QueryRow("SELECT COUNT(*) FROM object WHERE level_id = ?", id).Scan(&objects); err != nil {
		return 0, 0, err
	}
	if err := db.db.QueryRow("SELECT COUNT(*) FROM enemy WHERE level_id = ?", id).Scan(&enemies); err != nil {
		return 0, 0, err
	}

	return objects, enemies, nil
}

// Unclassified returns the number of invalid entries stored for each level
// of an image, keyed by level name
func (db *LevelDB) Unclassified(crc string) (map[string]int, error) {
	rows, err := db.db.Query(`SELECT l.name,
	(SELECT COUNT(*) FROM object AS o WHERE o.level_id = l.id AND o.kind = ?) +
	(SELECT COUNT(*) FROM enemy AS e WHERE e.level_id = l.id AND e.kind = ?)
	FROM level AS l WHERE l.crc = ?`, object.Invalid.String(), enemy.Invalid.String(), crc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		if n > 0 {
			out[name] = n
		}
	}

	return out, rows.Err()
}

// Raw returns the stored bytes of a level, or nil if it is unknown
func (db *LevelDB) Raw(crc, name string) (*Raw, error) {
	var h, o, e []byte
	switch err := db.db.QueryRow("SELECT header, objects, enemies FROM level WHERE crc = ? AND name = ?", crc, name).Scan(&h, &o, &e); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		raw := Raw{Header: h}
		if raw.Objects, err = db.dec.DecodeAll(o, nil); err != nil {
			return nil, err
		}
		if raw.Enemies, err = db.dec.DecodeAll(e, nil); err != nil {
			return nil, err
		}
		return &raw, nil
	default:
		return nil, err
	}
}
