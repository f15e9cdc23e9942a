package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const TableManga = "MANGA"

var DB *sql.DB

// ConnectDB opens the sqlite archive at path and makes sure the MANGA table exists.
func ConnectDB(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	if err := CreateTables(db); err != nil {
		db.Close()
		return err
	}
	DB = db
	return nil
}

func CreateTables(db *sql.DB) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS " + TableManga + " (UUID TEXT PRIMARY KEY, JSON TEXT NOT NULL, DATE TEXT)")
	return err
}

func ExistsInDatabase(id string) (bool, error) {
	var found string
	err := DB.QueryRow("SELECT UUID FROM "+TableManga+" WHERE UUID = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpsertManga inserts the record or replaces the stored JSON of an existing one.
func UpsertManga(manga Manga) error {
	if _, err := uuid.Parse(manga.Id); err != nil {
		return fmt.Errorf("manga id %q: %w", manga.Id, err)
	}
	jsonManga, err := json.Marshal(manga)
	if err != nil {
		return err
	}
	_, err = DB.Exec("INSERT INTO "+TableManga+" (UUID, JSON, DATE) VALUES (?, ?, ?) ON CONFLICT (UUID) DO UPDATE SET JSON=excluded.JSON, DATE=excluded.DATE",
		manga.Id, string(jsonManga), manga.UpdatedAt)
	return err
}

func StreamAllManga() iter.Seq2[Manga, error] {
	return func(yield func(Manga, error) bool) {
		rows, err := DB.Query("SELECT JSON FROM " + TableManga + " ORDER BY UUID ASC")
		if err != nil {
			yield(Manga{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			manga := Manga{}
			var jsonManga []byte
			if err := rows.Scan(&jsonManga); err != nil {
				yield(Manga{}, err)
				return
			}
			if err := json.Unmarshal(jsonManga, &manga); err != nil {
				yield(Manga{}, fmt.Errorf("decoding stored manga: %w", err))
				return
			}
			if !yield(manga, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Manga{}, err)
		}
	}
}

func GetAllManga() ([]Manga, error) {
	var mangaList []Manga
	for manga, err := range StreamAllManga() {
		if err != nil {
			return nil, err
		}
		mangaList = append(mangaList, manga)
	}
	return mangaList, nil
}
