package postgres

//nolint:revive
import (
	"dockhub/config"
	"errors"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads and writes so reports can run against a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type connectionOptions struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
	maxRetry int
	waitTime int
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close closes both pools. The read pool may be the same database as the write pool.
func (c *Connection) Close() error {
	var errs []error

	if c.Read != nil {
		errs = append(errs, c.Read.Close())
	}

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	return errors.Join(errs...)
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(connectionOptions{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
		timezone: write.Timezone,
		maxRetry: config.DB.Postgres.MaxRetry,
		waitTime: config.DB.Postgres.RetryWaitTime,
	})
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(connectionOptions{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
		timezone: read.Timezone,
		maxRetry: config.DB.Postgres.MaxRetry,
		waitTime: config.DB.Postgres.RetryWaitTime,
	})
}

// DSN renders the connection options as a postgres URL.
func (opts connectionOptions) DSN() string {
	query := url.Values{}
	if opts.sslMode != "" {
		query.Set("sslmode", opts.sslMode)
	}

	if opts.timezone != "" {
		query.Set("timezone", opts.timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opts.username, opts.password),
		Host:     net.JoinHostPort(opts.host, opts.port),
		Path:     opts.dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection connects with retries and exits the process when every attempt fails.
func CreatePostgresConnection(opts connectionOptions) *sqlx.DB {
	maxRetry := max(opts.maxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", opts.DSN())
		if err == nil {
			log.
				Info().
				Str("name", opts.name).
				Str("host", opts.host).
				Str("port", opts.port).
				Str("dbName", opts.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", opts.name).
			Str("host", opts.host).
			Str("dbName", opts.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(opts.waitTime) * time.Second)
	}

	log.Fatal().Str("name", opts.name).Int("attempts", maxRetry).Msg("Giving up connecting to database")

	return nil
}
