package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
	dbSource = "./data/lvlreq.db"
)

// DB is the global database connection pool.
var DB *sql.DB

// InitDB initializes the SQLite database and creates tables if they don't exist.
func InitDB() {
	InitDBAt(dbSource)
}

// InitDBAt opens the database at the given path. Tests point it at a
// throwaway file.
func InitDBAt(source string) {
	var err error
	DB, err = sql.Open(dbDriver, source)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// createTables is defined in migrate.go
	createTables()
}
