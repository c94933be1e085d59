package sprite

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// DB stores sprites in a SQLite database. Identical images shared by several
// client IDs are only stored once.
type DB struct {
	db     *sql.DB
	logger *log.Logger
}

// NewDB opens or creates the database in file.
func NewDB(file string, logger *log.Logger) (*DB, error) {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (client_id INTEGER PRIMARY KEY NOT NULL, image_id INTEGER NOT NULL, FOREIGN KEY(image_id) REFERENCES image(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) addImage(r io.Reader) (int64, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if _, _, err := image.Decode(bytes.NewReader(b)); err != nil {
		return 0, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM image WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		// The file is kept as is so the decoded color model, and with it
		// whether the sprite has an alpha channel, is preserved
		result, err := db.db.Exec("INSERT INTO image (sha1, data) VALUES (?, ?)", sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Add stores the image read from r as the sprite for id, replacing any
// existing sprite.
func (db *DB) Add(id uint32, r io.Reader) error {
	imageID, err := db.addImage(r)
	if err != nil {
		return err
	}
	if _, err := db.db.Exec("INSERT OR REPLACE INTO sprite (client_id, image_id) VALUES (?, ?)", id, imageID); err != nil {
		return err
	}
	return nil
}

func (db *DB) addFile(id uint32, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return db.Add(id, f)
}

// ImportDir adds every sprite file directly inside dir and returns how many
// were imported. Files not named after a client ID are skipped.
func (db *DB) ImportDir(dir string) (int, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var n int
	for _, info := range files {
		// Ignore any hidden files, otherwise we end up fighting with things like Spotlight, etc.
		if info.Name()[0] == '.' || !info.Mode().IsRegular() {
			continue
		}

		switch filepath.Ext(info.Name()) {
		case ".png", ".gif", ".jpg", ".jpeg", ".bmp":
		default:
			continue
		}

		id, err := ClientID(info.Name())
		if err != nil {
			db.logger.Printf("Skipping \"%s\": %v\n", info.Name(), err)
			continue
		}

		if err := db.addFile(id, filepath.Join(dir, info.Name())); err != nil {
			return n, fmt.Errorf("%s: %w", info.Name(), err)
		}
		n++
	}

	return n, nil
}

// Image returns the sprite for id, or nil if there is none.
func (db *DB) Image(id uint32) (image.Image, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT i.data FROM sprite AS s JOIN image AS i ON s.image_id = i.id WHERE s.client_id = ?", id).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		m, _, err := image.Decode(bytes.NewReader(b))
		return m, err
	default:
		return nil, err
	}
}

// Render implements the atlas.Renderer interface.
func (db *DB) Render(id uint32, size int) (image.Image, bool) {
	m, err := db.Image(id)
	if err != nil {
		db.logger.Printf("Unable to load sprite %d: %v\n", id, err)
		return nil, false
	}
	if m == nil {
		return nil, false
	}
	return prepare(m, size), true
}
