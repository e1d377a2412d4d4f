package postgres

// SetupPostgres starts a disposable database for tests in package postgres_test.
var SetupPostgres = setupPostgres
