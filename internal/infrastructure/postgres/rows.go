package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
)

// joinColumns is the canonical column order of the dashboard join:
// users (6), comments (4), orders (6), profiles (5). Both query variants
// must produce rows in exactly this order; scanJoined is the single place
// that order is interpreted.
const joinColumns = `us.id, us.username, us.password_hash, us.email, us.role, us.created_at,
	       c.id, c.user_id, c.content, c.created_at,
	       o.id, o.user_id, o.product_id, o.quantity, o.total, o.ordered_at,
	       p.user_id, p.full_name, p.bio, p.city, p.phone`

func scanJoined(rows pgx.Rows) ([]entity.JoinedRow, error) {
	var out []entity.JoinedRow
	for rows.Next() {
		var r entity.JoinedRow
		if err := rows.Scan(
			&r.User.ID, &r.User.Username, &r.User.Password, &r.User.Email, &r.User.Role, &r.User.CreatedAt,
			&r.Comment.ID, &r.Comment.UserID, &r.Comment.Content, &r.Comment.CreatedAt,
			&r.Order.ID, &r.Order.UserID, &r.Order.ProductID, &r.Order.Quantity, &r.Order.Total, &r.Order.OrderedAt,
			&r.Profile.UserID, &r.Profile.FullName, &r.Profile.Bio, &r.Profile.City, &r.Profile.Phone,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanSummaries(rows pgx.Rows) ([]entity.UserSummary, error) {
	var out []entity.UserSummary
	for rows.Next() {
		var s entity.UserSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Email); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
