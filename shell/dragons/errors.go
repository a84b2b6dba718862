package dragons

import "errors"

var (
	// ErrEmptyDragonName is returned when a dragon without a name is supplied.
	ErrEmptyDragonName = errors.New("dragon name must not be empty")

	// ErrNilDatabaseConnection is returned when the SQLRepository is created without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrInvalidTableName is returned for table names that are not plain lowercase SQL identifiers.
	ErrInvalidTableName = errors.New("dragons table name must be a plain lowercase identifier")

	// ErrBuildingQueryFailed is returned when a SQL statement could not be built.
	ErrBuildingQueryFailed = errors.New("building the query failed")

	// ErrQueryingDragonsFailed is returned when the dragons could not be read from the database.
	ErrQueryingDragonsFailed = errors.New("querying dragons failed")

	// ErrAddingDragonsFailed is returned when the dragons could not be written to the database.
	ErrAddingDragonsFailed = errors.New("adding dragons failed")

	// ErrCreatingTableFailed is returned when the dragons table could not be created.
	ErrCreatingTableFailed = errors.New("creating the dragons table failed")
)
