package eventstore

import "errors"

var (
	// ErrEmptyEventsTableName is returned when an empty table name is supplied to an engine.
	ErrEmptyEventsTableName = errors.New("events table name must not be empty")

	// ErrNilDatabaseConnection is returned when an engine is created without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrBuildingQueryFailed is returned when the SQL statement could not be built from a Filter.
	ErrBuildingQueryFailed = errors.New("building the query failed")

	// ErrQueryingEventsFailed is returned when the database rejected or failed the select statement.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrScanningDBRowFailed is returned when a result row could not be scanned.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrBuildingStorableEventFailed is returned when a result row does not form a valid StorableEvent.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")

	// ErrAppendingEventFailed is returned when the insert statement failed.
	ErrAppendingEventFailed = errors.New("appending the event failed")

	// ErrGettingRowsAffectedFailed is returned when the number of inserted rows can't be determined.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")

	// ErrCreatingTableFailed is returned when the events table could not be created.
	ErrCreatingTableFailed = errors.New("creating the events table failed")
)

// MaxSequenceNumberUint is the highest sequence number contained in a query result.
type MaxSequenceNumberUint = uint
