package database

// The history store keeps a record of every program the hub has run, so that `hub history` can
// show them again. It will work with any of the drivers below but is only ever tested against
// SQLite, which is the default.

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

const DEFAULT_SQLITE_FILE = "rpal_history.db"

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// Driver accepts either the human-readable name of a database or the name of its Go driver.
func Driver(name string) (string, bool) {
	if d, ok := drivers[name]; ok {
		return d, true
	}
	for _, d := range drivers {
		if d == name {
			return d, true
		}
	}
	return "", false
}

func GetDriverOptions() string {
	result := "The following SQL drivers are available: \n\n"
	for _, k := range GetSortedDrivers() {
		result = result + fmt.Sprintf("  %v (%v)\n", k, drivers[k])
	}
	return result
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// A Run is one evaluation of a program, successful or otherwise.
type Run struct {
	Digest  string // Hex of the BLAKE2b-256 hash of the source.
	Source  string
	Output  string // What the program printed.
	Result  string // The print form of the value it evaluated to, if it didn't fail.
	Failure string // The error it failed with, if it did.
	Created time.Time
}

func Digest(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

type Store struct {
	db     *sql.DB
	driver string
}

func Open(driverName, dsn string) (*Store, error) {
	driver, ok := Driver(driverName)
	if !ok {
		return nil, fmt.Errorf("database: unknown driver %q", driverName)
	}
	if dsn == "" && driver == "sqlite" {
		dsn = DEFAULT_SQLITE_FILE
	}
	sqlObj, connectionError := sql.Open(driver, dsn)
	if connectionError != nil {
		return nil, connectionError
	}
	err := sqlObj.Ping()
	if err != nil {
		sqlObj.Close()
		return nil, err
	}
	store := &Store{db: sqlObj, driver: driver}
	query :=
		`CREATE TABLE IF NOT EXISTS _Runs (
    digest varchar(64),
    source text,
    output text,
    result text,
    failure text,
    created bigint)`
	_, err = sqlObj.Exec(query)
	if err != nil {
		sqlObj.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// The drivers don't agree on how to write a parameter.
func (s *Store) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		switch s.driver {
		case "postgres":
			ph[i] = "$" + strconv.Itoa(i+1)
		case "sqlserver":
			ph[i] = "@p" + strconv.Itoa(i+1)
		case "oracle":
			ph[i] = ":" + strconv.Itoa(i+1)
		default:
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

func (s *Store) Record(run Run) error {
	if run.Digest == "" {
		run.Digest = Digest(run.Source)
	}
	if run.Created.IsZero() {
		run.Created = time.Now()
	}
	query :=
		`INSERT INTO _Runs(digest, source, output, result, failure, created)
	VALUES (` + s.placeholders(6) + `)`
	_, err := s.db.Exec(query, run.Digest, run.Source, run.Output, run.Result, run.Failure, run.Created.UnixNano())
	return err
}

// Recent returns at most n runs, the latest first.
func (s *Store) Recent(n int) ([]Run, error) {
	query :=
		`SELECT digest, source, output, result, failure, created FROM _Runs
	ORDER BY created DESC`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []Run{}
	for len(result) < n && rows.Next() {
		var run Run
		var created int64
		err = rows.Scan(&run.Digest, &run.Source, &run.Output, &run.Result, &run.Failure, &created)
		if err != nil {
			return nil, err
		}
		run.Created = time.Unix(0, created)
		result = append(result, run)
	}
	return result, rows.Err()
}

// Count gives the number of times a given program has been run.
func (s *Store) Count(source string) (int, error) {
	query := `SELECT COUNT(*) FROM _Runs WHERE digest = ` + s.placeholders(1)
	var count int
	err := s.db.QueryRow(query, Digest(source)).Scan(&count)
	return count, err
}
