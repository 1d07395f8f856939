package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshot (
    id                 INTEGER PRIMARY KEY CHECK (id = 1),
    income             TEXT NOT NULL DEFAULT '',
    time_frame_months  INTEGER NOT NULL DEFAULT 12
);

CREATE TABLE IF NOT EXISTS categories (
    id        TEXT PRIMARY KEY,
    amount    TEXT NOT NULL DEFAULT '',
    color     TEXT NOT NULL DEFAULT '',
    position  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_categories_position ON categories(position);
`
