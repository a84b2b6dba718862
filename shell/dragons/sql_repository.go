package dragons

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

const (
	defaultTableName = "dragons"
	dialectPostgres  = "postgres"
	colName          = "name"
	colRealmID       = "realm_id"

	logMsgBuildQueryFailed  = "failed to build dragons query"
	logMsgQueryFailed       = "querying dragons failed"
	logMsgAddFailed         = "adding dragons failed"
	logMsgCreateTableFailed = "failed to create dragons table"
	logMsgSQLExecuted       = "executed sql for: "
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrRealmID          = "realm_id"
	logAttrDragonCount      = "dragon_count"
	logActionFind           = "find"
	logActionAdd            = "add"
)

const createTableDDL = `
CREATE TABLE IF NOT EXISTS %[1]s (
	name text NOT NULL CHECK (name <> ''),
	realm_id integer NOT NULL,
	PRIMARY KEY (realm_id, name)
);
`

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// SQLRepository reads and writes dragons in a Postgres table.
type SQLRepository struct {
	db        *sqlx.DB
	tableName string
	logger    Logger
}

// Option defines a functional option for configuring SQLRepository.
type Option func(*SQLRepository) error

// WithTableName sets the table name for the SQLRepository.
func WithTableName(tableName string) Option {
	return func(r *SQLRepository) error {
		if !tableNamePattern.MatchString(tableName) {
			return ErrInvalidTableName
		}

		r.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the SQLRepository.
func WithLogger(logger Logger) Option {
	return func(r *SQLRepository) error {
		r.logger = logger
		return nil
	}
}

// NewSQLRepository creates a new SQLRepository on top of a sqlx.DB.
func NewSQLRepository(db *sqlx.DB, options ...Option) (SQLRepository, error) {
	if db == nil {
		return SQLRepository{}, ErrNilDatabaseConnection
	}

	r := SQLRepository{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&r); err != nil {
			return SQLRepository{}, err
		}
	}

	return r, nil
}

// CreateTable creates the dragons table if it doesn't exist yet.
func (r SQLRepository) CreateTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf(createTableDDL, r.tableName)); err != nil {
		r.logError(logMsgCreateTableFailed, err)

		return errors.Join(ErrCreatingTableFailed, err)
	}

	return nil
}

// FindDragonsByRealm returns the dragons of the realm ordered by name.
func (r SQLRepository) FindDragonsByRealm(ctx context.Context, realmID core.RealmID) (core.Dragons, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(r.tableName).
		Select(colName, colRealmID).
		Where(goqu.Ex{colRealmID: realmID}).
		Order(goqu.I(colName).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		r.logError(logMsgBuildQueryFailed, err)

		return nil, errors.Join(ErrBuildingQueryFailed, err)
	}

	records := make([]Record, 0)
	if err = r.db.SelectContext(ctx, &records, sqlQuery, args...); err != nil {
		r.logError(logMsgQueryFailed, err, logAttrQuery, sqlQuery, logAttrRealmID, realmID)

		return nil, errors.Join(ErrQueryingDragonsFailed, err)
	}

	r.logQuery(sqlQuery, logActionFind)

	dragons := make(core.Dragons, 0, len(records))
	for _, record := range records {
		dragons = append(dragons, core.BuildDragon(record.Name))
	}

	return dragons, nil
}

// Add stores the named dragons in the realm. Dragons that already exist there are left untouched.
func (r SQLRepository) Add(ctx context.Context, realmID core.RealmID, name core.DragonNameString, moreNames ...core.DragonNameString) error {
	rows := make([]any, 0, 1+len(moreNames))
	for _, n := range append([]core.DragonNameString{name}, moreNames...) {
		record, err := BuildRecord(n, realmID)
		if err != nil {
			return err
		}

		rows = append(rows, record)
	}

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(r.tableName).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Prepared(true).
		ToSQL()
	if err != nil {
		r.logError(logMsgBuildQueryFailed, err)

		return errors.Join(ErrBuildingQueryFailed, err)
	}

	if _, err = r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		r.logError(logMsgAddFailed, err, logAttrQuery, sqlQuery, logAttrDragonCount, len(rows))

		return errors.Join(ErrAddingDragonsFailed, err)
	}

	r.logQuery(sqlQuery, logActionAdd)

	return nil
}

func (r SQLRepository) logQuery(sqlQuery string, action string) {
	if r.logger != nil {
		r.logger.Debug(logMsgSQLExecuted+action, logAttrQuery, sqlQuery)
	}
}

func (r SQLRepository) logError(message string, err error, args ...any) {
	if r.logger != nil {
		r.logger.Error(message, append([]any{logAttrError, err.Error()}, args...)...)
	}
}
