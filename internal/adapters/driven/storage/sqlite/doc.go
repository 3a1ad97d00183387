// Package sqlite provides the SQLite-backed HistoryStore.
//
// The store records every URL the user opened, so that `repohome history`
// can recall them. Schema management is via embedded SQL migrations run
// in lexical order at open time; the driver is the pure-Go modernc.org
// build, so no CGO is involved.
package sqlite
