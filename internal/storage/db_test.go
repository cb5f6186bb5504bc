package storage

import (
	"testing"

	"github.com/naradigital/go-portal/pkg/testsupport"
)

func TestNewSQLiteDBDefaultsToMemory(t *testing.T) {
	db, err := NewSQLiteDB("")
	if err != nil {
		t.Fatalf("NewSQLiteDB() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestNewPostgresDBWrapsExistingPool(t *testing.T) {
	// Dialect wiring only; sqlite stands in for a live Postgres pool.
	sqldb, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("NewSQLiteMemoryDB() error = %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := NewPostgresDB(sqldb)
	if db == nil {
		t.Fatal("NewPostgresDB() returned nil")
	}
	t.Cleanup(func() { _ = db.Close() })
}
