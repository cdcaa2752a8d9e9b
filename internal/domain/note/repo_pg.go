package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type noteRepoPG struct{ pool *pgxpool.Pool }

func NewNoteRepoPG(pool *pgxpool.Pool) NoteRepository {
	return &noteRepoPG{pool: pool}
}

func (r *noteRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

const noteCols = `id, user_id, target_kind, target_id, content, created, updated`

func scanNote(row pgx.Row) (*Note, error) {
	var n Note
	var kind string
	err := row.Scan(&n.ID, &n.User, &kind, &n.Target.ID, &n.Content, &n.Created, &n.Updated)
	n.Target.Kind = EntityKind(kind)
	return &n, err
}

func scanOne(row pgx.Row, convert func(error) error) (*Note, error) {
	n, err := scanNote(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return n, nil
}

// Create inserts the note only if its target exists; the target table comes
// from the closed set of entity kinds, never from request text. The target row
// is key-share locked so a delete running alongside cannot strand the note.
func (r *noteRepoPG) Create(ctx context.Context, n *Note) error {
	table := n.Target.Kind.Table()
	if table == "" {
		return apperr.Validation("target", "has an unknown kind")
	}

	query := fmt.Sprintf(`
		INSERT INTO note (user_id, target_kind, target_id, content)
		SELECT $1::uuid, $2::text, $3::uuid, $4::text
		WHERE EXISTS (SELECT 1 FROM %s WHERE id = $3::uuid FOR KEY SHARE)
		RETURNING `+noteCols, pgx.Identifier{table}.Sanitize())

	created, err := scanNote(r.conn(ctx).QueryRow(ctx, query,
		n.User, string(n.Target.Kind), n.Target.ID, n.Content))
	if db.IsNoRows(err) {
		return apperr.Validation("target", "refers to a record that does not exist")
	}
	if err != nil {
		return db.WriteError(err)
	}
	*n = *created
	return nil
}

func (r *noteRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Note, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+noteCols+` FROM note WHERE id = $1`, id)
	return scanOne(row, func(err error) error { return apperr.Storage(err) })
}

func (r *noteRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*Note, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE note SET
			user_id = COALESCE($2, user_id),
			content = COALESCE($3, content),
			updated = NOW()
		WHERE id = $1
		RETURNING `+noteCols,
		id, p.User, p.Content)
	return scanOne(row, db.WriteError)
}

func (r *noteRepoPG) Delete(ctx context.Context, id uuid.UUID) (*Note, error) {
	row := r.conn(ctx).QueryRow(ctx, `DELETE FROM note WHERE id = $1 RETURNING `+noteCols, id)
	return scanOne(row, db.DeleteError)
}

func (r *noteRepoPG) List(ctx context.Context) ([]*Note, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+noteCols+` FROM note ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []*Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}
