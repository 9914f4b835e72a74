package sqlite

// Schema DDL. Column names stay camelCase so the database file remains
// drop-in compatible with the existing client and its API payloads.
//
// The FOREIGN KEY clauses on insurances and events are advisory: the
// foreign_keys pragma is left off, matching the deployed data files which
// already contain claim events for since-deleted insureds. The two
// referential guarantees the API does make (an insured's policies die with
// the insured, a referenced type cannot be deleted) are enforced by
// command-layer transactions instead.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS insureds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		firstName TEXT NOT NULL,
		lastName TEXT NOT NULL,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		postalCode TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS insuranceTypes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS insurances (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		typeId INTEGER NOT NULL,
		amount REAL NOT NULL,
		insuredId INTEGER NOT NULL,
		subject TEXT NOT NULL,
		validFrom TEXT NOT NULL,
		validTo TEXT NOT NULL,
		FOREIGN KEY(typeId) REFERENCES insuranceTypes(id),
		FOREIGN KEY(insuredId) REFERENCES insureds(id)
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		insuredId INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		date TEXT NOT NULL,
		status TEXT DEFAULT 'in progress',
		payout REAL DEFAULT 0,
		FOREIGN KEY(insuredId) REFERENCES insureds(id)
	)`,
}
