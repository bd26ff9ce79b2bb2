// Package repo provides the paper repository implementation
package repo

import (
	"context"
	"errors"

	"stockcount/internal/modkit/repokit"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/store"
	"stockcount/internal/services/counting/domain"

	"github.com/google/uuid"
)

// Repo is the paper persistence surface used by the service layer
type Repo interface {
	EnsureSchema(ctx context.Context) error
	InsertPaper(ctx context.Context, p domain.PaperView) error
	MarkPushed(ctx context.Context, id uuid.UUID, upstreamID, pushErr string) error
	Paper(ctx context.Context, id uuid.UUID) (domain.PaperView, error)
	PaperBySession(ctx context.Context, sessionID uuid.UUID) (domain.PaperView, error)
}

type (
	// PG is a Postgres implementation of the paper repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema creates the tables when missing
func (r *queries) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, Schema)
	return err
}

// InsertPaper stores the paper header and its lines, run it inside a tx
func (r *queries) InsertPaper(ctx context.Context, p domain.PaperView) error {
	const header = `
		INSERT INTO papers (
			id, session_id, kind, order_id, deliverer_name, receiver_name,
			deliverer_signature_sha256, receiver_signature_sha256, description, complete, created_at
		) VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, header,
		p.ID.String(), p.SessionID.String(), string(p.Kind), p.OrderID, p.DelivererName, p.ReceiverName,
		p.DelivererSigHash, p.ReceiverSigHash, p.Description, p.Complete, p.CreatedAt,
	)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("session %s already has a paper", p.SessionID)
		}
		return perr.FromPostgresWithField(err, "insert paper")
	}

	const line = `
		INSERT INTO paper_lines (paper_id, pos, item_id, display_name, expected, actual, status, detail_id)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range p.Lines {
		if _, err := r.q.Exec(ctx, line,
			p.ID.String(), i, l.ItemID, l.DisplayName, l.Expected, l.Actual, l.Status, l.DetailID,
		); err != nil {
			return perr.FromPostgresWithField(err, "insert paper line")
		}
	}
	return nil
}

// MarkPushed records the upstream outcome, an empty pushErr means success
func (r *queries) MarkPushed(ctx context.Context, id uuid.UUID, upstreamID, pushErr string) error {
	const sql = `
		UPDATE papers
		SET pushed = $2, upstream_id = $3, push_error = $4
		WHERE id = $1::uuid`
	return store.ExecOne(ctx, r.q, sql, id.String(), pushErr == "", upstreamID, pushErr)
}

const selectPaper = `
	SELECT id::text, session_id::text, kind, order_id, deliverer_name, receiver_name,
	       deliverer_signature_sha256, receiver_signature_sha256, description,
	       complete, pushed, upstream_id, push_error, created_at
	FROM papers`

// Paper loads a paper with its lines
func (r *queries) Paper(ctx context.Context, id uuid.UUID) (domain.PaperView, error) {
	return r.load(ctx, selectPaper+` WHERE id = $1::uuid`, id)
}

// PaperBySession loads the paper a session produced
func (r *queries) PaperBySession(ctx context.Context, sessionID uuid.UUID) (domain.PaperView, error) {
	return r.load(ctx, selectPaper+` WHERE session_id = $1::uuid`, sessionID)
}

func (r *queries) load(ctx context.Context, sql string, key uuid.UUID) (domain.PaperView, error) {
	p, err := store.One(ctx, r.q, scanPaper, sql, key.String())
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.PaperView{}, perr.NotFoundf("paper %s not found", key)
		}
		return domain.PaperView{}, err
	}

	const lines = `
		SELECT item_id, display_name, expected, actual, status, detail_id
		FROM paper_lines
		WHERE paper_id = $1::uuid
		ORDER BY pos`
	p.Lines, err = store.Many(ctx, r.q, scanLine, lines, p.ID.String())
	if err != nil {
		return domain.PaperView{}, err
	}
	if p.Lines == nil {
		p.Lines = []domain.LineView{}
	}
	return p, nil
}

func scanPaper(row store.Row) (domain.PaperView, error) {
	var (
		p           domain.PaperView
		id, session string
		kind        string
	)
	err := row.Scan(&id, &session, &kind, &p.OrderID, &p.DelivererName, &p.ReceiverName,
		&p.DelivererSigHash, &p.ReceiverSigHash, &p.Description,
		&p.Complete, &p.Pushed, &p.UpstreamID, &p.PushError, &p.CreatedAt)
	if err != nil {
		return domain.PaperView{}, err
	}
	if p.ID, err = uuid.Parse(id); err != nil {
		return domain.PaperView{}, err
	}
	if p.SessionID, err = uuid.Parse(session); err != nil {
		return domain.PaperView{}, err
	}
	p.Kind = domain.Kind(kind)
	return p, nil
}

func scanLine(row store.Row) (domain.LineView, error) {
	var l domain.LineView
	err := row.Scan(&l.ItemID, &l.DisplayName, &l.Expected, &l.Actual, &l.Status, &l.DetailID)
	return l, err
}
