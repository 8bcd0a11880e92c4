package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"bussola/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	case config.DriverMySQL, "":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", conf.DbDriver)
	}

	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true&clientFoundRows=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens the embedded store used for local runs and tests.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive across queries.
	db.SetMaxOpenConns(1)
	return db, nil
}
