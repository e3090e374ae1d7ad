package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/library-circulation-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/checkoutbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/openaccount"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/reservebook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowerledger"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/circulationhistory"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overduereport"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/searchbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/menu"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell/observable"
)

type observability struct {
	logger    *slog.Logger
	collector shell.MetricsCollector
}

// openEventStore creates the configured engine; the returned func releases its connections.
func openEventStore(
	ctx context.Context,
	cfg config.AppConfig,
	logger *slog.Logger,
	collector shell.MetricsCollector,
) (shell.EventStore, func(), error) {

	if !cfg.UsesPostgres() {
		eventStore, err := memoryengine.NewEventStore(memoryengine.WithLogger(logger))

		return eventStore, func() {}, err
	}

	options := []postgresengine.Option{
		postgresengine.WithTableName(cfg.EventsTable),
		postgresengine.WithLogger(logger),
	}

	if collector != nil {
		options = append(options, postgresengine.WithMetrics(collector))
	}

	switch cfg.DBAdapter {
	case config.DBAdapterPGX:
		return openPGXEventStore(ctx, cfg, options)
	case config.DBAdapterSQL:
		return openSQLEventStore(ctx, cfg, options)
	case config.DBAdapterSQLX:
		return openSQLXEventStore(ctx, cfg, options)
	default:
		return nil, nil, fmt.Errorf("%w: unknown db adapter %q", config.ErrInvalidAppConfig, cfg.DBAdapter)
	}
}

func openPGXEventStore(ctx context.Context, cfg config.AppConfig, options []postgresengine.Option) (shell.EventStore, func(), error) {
	if err := migrate(ctx, cfg.PostgresDSN); err != nil {
		return nil, nil, err
	}

	primary, err := config.PostgresPGXPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.HasReplica() {
		eventStore, storeErr := postgresengine.NewEventStoreFromPGXPool(primary, options...)

		return eventStore, primary.Close, storeErr
	}

	replica, err := config.PostgresPGXPool(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		replica.Close()
		primary.Close()
	}

	eventStore, err := postgresengine.NewEventStoreFromPGXPoolAndReplica(primary, replica, options...)

	return eventStore, closeAll, err
}

func openSQLEventStore(ctx context.Context, cfg config.AppConfig, options []postgresengine.Option) (shell.EventStore, func(), error) {
	primary, err := config.PostgresSQLDB(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if err = postgresengine.Migrate(ctx, primary); err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	if !cfg.HasReplica() {
		eventStore, storeErr := postgresengine.NewEventStoreFromSQLDB(primary, options...)

		return eventStore, func() { _ = primary.Close() }, storeErr
	}

	replica, err := config.PostgresSQLDB(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		_ = replica.Close()
		_ = primary.Close()
	}

	eventStore, err := postgresengine.NewEventStoreFromSQLDBAndReplica(primary, replica, options...)

	return eventStore, closeAll, err
}

func openSQLXEventStore(ctx context.Context, cfg config.AppConfig, options []postgresengine.Option) (shell.EventStore, func(), error) {
	primary, err := config.PostgresSQLX(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	if err = postgresengine.Migrate(ctx, primary.DB); err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	if !cfg.HasReplica() {
		eventStore, storeErr := postgresengine.NewEventStoreFromSQLX(primary, options...)

		return eventStore, func() { _ = primary.Close() }, storeErr
	}

	replica, err := config.PostgresSQLX(ctx, cfg.PostgresReplicaDSN)
	if err != nil {
		_ = primary.Close()
		return nil, nil, err
	}

	closeAll := func() {
		_ = replica.Close()
		_ = primary.Close()
	}

	eventStore, err := postgresengine.NewEventStoreFromSQLXAndReplica(primary, replica, options...)

	return eventStore, closeAll, err
}

// migrate applies the schema through a short-lived database/sql connection.
func migrate(ctx context.Context, dsn string) error {
	db, err := config.PostgresSQLDB(ctx, dsn)
	if err != nil {
		return err
	}

	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	return postgresengine.Migrate(ctx, db)
}

func buildHandlers(
	directory *core.LibraryDirectory,
	journal shell.Journal,
	cfg config.AppConfig,
	obs observability,
) (menu.Handlers, error) {

	var handlers menu.Handlers
	var err error

	if handlers.AddBook, err = wrapCommand[addbook.Command](addbook.NewCommandHandler(directory, journal))(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.OpenAccount, err = wrapCommand[openaccount.Command](openaccount.NewCommandHandler(directory, journal))(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.CheckOutBook, err = wrapCommand[checkoutbook.Command](checkoutbook.NewCommandHandler(directory, journal))(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.ReturnBook, err = wrapCommand[returnbook.Command](returnbook.NewCommandHandler(directory, journal))(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.ReserveBook, err = wrapCommand[reservebook.Command](reservebook.NewCommandHandler(directory, journal))(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.SearchBooks, err = wrapQuery[searchbooks.Query, searchbooks.SearchResult](searchbooks.NewQueryHandler(directory))(obs); err != nil {
		return menu.Handlers{}, err
	}

	overdueHandler, err := overduereport.NewQueryHandler(
		directory,
		overduereport.WithFineCalculator(core.NewFineCalculator(cfg.FinePerDay)),
	)
	if handlers.OverdueReport, err = wrapQuery[overduereport.Query, overduereport.OverdueReport](overdueHandler, err)(obs); err != nil {
		return menu.Handlers{}, err
	}

	if handlers.BorrowerLedger, err = wrapQuery[borrowerledger.Query, borrowerledger.BorrowerLedger](borrowerledger.NewQueryHandler(directory))(obs); err != nil {
		return menu.Handlers{}, err
	}

	historyHandler := circulationhistory.NewQueryHandler(journal)
	if handlers.CirculationHistory, err = wrapQuery[circulationhistory.Query, circulationhistory.CirculationHistory](historyHandler, nil)(obs); err != nil {
		return menu.Handlers{}, err
	}

	return handlers, nil
}

// wrapCommand takes a handler constructor's results and adds logging and metrics.
func wrapCommand[C shell.Command](
	handler shell.CommandHandler[C],
	err error,
) func(observability) (shell.CommandHandler[C], error) {

	return func(obs observability) (shell.CommandHandler[C], error) {
		if err != nil {
			return nil, err
		}

		opts := []observable.CommandOption[C]{observable.WithCommandContextualLogging[C](obs.logger)}
		if obs.collector != nil {
			opts = append(opts, observable.WithCommandMetrics[C](obs.collector))
		}

		return observable.NewCommandWrapper[C](handler, opts...)
	}
}

// wrapQuery takes a handler constructor's results and adds logging and metrics.
func wrapQuery[Q shell.Query, R any](
	handler shell.QueryHandler[Q, R],
	err error,
) func(observability) (shell.QueryHandler[Q, R], error) {

	return func(obs observability) (shell.QueryHandler[Q, R], error) {
		if err != nil {
			return nil, err
		}

		opts := []observable.QueryOption[Q, R]{observable.WithQueryContextualLogging[Q, R](obs.logger)}
		if obs.collector != nil {
			opts = append(opts, observable.WithQueryMetrics[Q, R](obs.collector))
		}

		return observable.NewQueryWrapper[Q, R](handler, opts...)
	}
}
