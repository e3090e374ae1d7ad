package postgresengine

import (
	"math"
	"time"
)

const (
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "

	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrEventType        = "event_type"
	logAttrEventCount       = "event_count"
	logAttrDurationMS       = "duration_ms"
	logAttrExpectedEvents   = "expected_events"
	logAttrRowsAffected     = "rows_affected"
	logAttrExpectedSequence = "expected_sequence"
	logAttrConsistency      = "consistency"

	logActionQuery  = "query"
	logActionAppend = "append"
)

// Metric names recorded through WithMetrics.
const (
	MetricQueryDuration        = "eventstore_query_duration_seconds"
	MetricAppendDuration       = "eventstore_append_duration_seconds"
	MetricEventsQueried        = "eventstore_query_event_count"
	MetricEventsAppended       = "eventstore_append_event_count"
	MetricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	MetricDatabaseErrors       = "eventstore_database_errors_total"
)

const (
	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorType = "error_type"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeBuildQuery = "build_query"
	errorTypeDatabase   = "database"
	errorTypeScan       = "scan"
)

func (es EventStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

func (es EventStore) logOperation(action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

func (es EventStore) logError(message string, err error, args ...any) {
	if es.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		es.logger.Error(message, allArgs...)
	}
}

func (es EventStore) recordQuery(duration time.Duration, eventCount int) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operationQuery, labelStatus: statusSuccess}
	es.metricsCollector.RecordDuration(MetricQueryDuration, duration, labels)
	es.metricsCollector.RecordValue(MetricEventsQueried, float64(eventCount), labels)
}

func (es EventStore) recordAppend(duration time.Duration, eventCount int) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operationAppend, labelStatus: statusSuccess}
	es.metricsCollector.RecordDuration(MetricAppendDuration, duration, labels)
	es.metricsCollector.RecordValue(MetricEventsAppended, float64(eventCount), labels)
}

func (es EventStore) recordConcurrencyConflict() {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(MetricConcurrencyConflicts, map[string]string{labelOperation: operationAppend})
	}
}

func (es EventStore) recordError(operation, errorType string) {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(MetricDatabaseErrors, map[string]string{
			labelOperation: operation,
			labelStatus:    statusError,
			labelErrorType: errorType,
		})
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
