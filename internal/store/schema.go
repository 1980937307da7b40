package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS metrics_payloads (
    org          TEXT PRIMARY KEY,
    payload      BLOB NOT NULL,
    fetched_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS premium_payloads (
    org          TEXT NOT NULL,
    year         INTEGER NOT NULL,
    month        INTEGER NOT NULL,
    payload      BLOB NOT NULL,
    fetched_at   TEXT NOT NULL,
    PRIMARY KEY (org, year, month)
);
`
