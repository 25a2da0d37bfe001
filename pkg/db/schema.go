package db

// schema holds one row per counted document and its full frequency table.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	document     TEXT NOT NULL,
	report_path  TEXT NOT NULL DEFAULT '',
	language     TEXT NOT NULL DEFAULT '',
	total_tokens INTEGER NOT NULL,
	vocabulary   INTEGER NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document);

CREATE TABLE IF NOT EXISTS word_counts (
	run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
	word   TEXT NOT NULL,
	count  INTEGER NOT NULL CHECK (count > 0),
	PRIMARY KEY (run_id, word)
);

CREATE INDEX IF NOT EXISTS idx_word_counts_count ON word_counts(run_id, count DESC);
`
