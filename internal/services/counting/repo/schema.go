package repo

// Schema creates the paper tables when missing
const Schema = `
CREATE TABLE IF NOT EXISTS papers (
	id                          uuid PRIMARY KEY,
	session_id                  uuid        NOT NULL,
	kind                        text        NOT NULL CHECK (kind IN ('import', 'export')),
	order_id                    text        NOT NULL,
	deliverer_name              text        NOT NULL,
	receiver_name               text        NOT NULL,
	deliverer_signature_sha256  text        NOT NULL,
	receiver_signature_sha256   text        NOT NULL,
	description                 text        NOT NULL DEFAULT '',
	complete                    boolean     NOT NULL,
	pushed                      boolean     NOT NULL DEFAULT false,
	upstream_id                 text        NOT NULL DEFAULT '',
	push_error                  text        NOT NULL DEFAULT '',
	created_at                  timestamptz NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS papers_session_uq ON papers (session_id);
CREATE INDEX IF NOT EXISTS papers_order_idx ON papers (kind, order_id);

CREATE TABLE IF NOT EXISTS paper_lines (
	paper_id     uuid    NOT NULL REFERENCES papers (id) ON DELETE CASCADE,
	pos          integer NOT NULL,
	item_id      text    NOT NULL,
	display_name text    NOT NULL DEFAULT '',
	expected     integer NOT NULL,
	actual       integer NOT NULL,
	status       text    NOT NULL,
	detail_id    text    NOT NULL DEFAULT '',
	PRIMARY KEY (paper_id, pos)
);
`
