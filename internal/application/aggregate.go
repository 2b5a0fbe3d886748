package application

import (
	"time"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
)

// ProfileView is the dashboard header: user fields and profile fields of
// the first joined row.
type ProfileView struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
	FullName  string
	Bio       string
	City      string
	Phone     string
}

// DashboardData is the flattened form of the four-way join.
type DashboardData struct {
	Profile  *ProfileView
	Comments []entity.Comment
	Orders   []entity.Order
}

// Aggregate collapses the joined row set back into one profile and the
// distinct comments and orders of the user. The join emits one row per
// comment/order pair, so both collections deduplicate by entity id with
// first-occurrence-wins semantics, preserving row order. When the backing
// query joins on a skewed key the same logic runs anyway; any distortion
// belongs to the query, not to this step.
func Aggregate(rows []entity.JoinedRow) DashboardData {
	var data DashboardData
	seenComments := make(map[int64]struct{})
	seenOrders := make(map[int64]struct{})

	for _, r := range rows {
		if data.Profile == nil {
			data.Profile = &ProfileView{
				ID:        r.User.ID,
				Username:  r.User.Username,
				Email:     r.User.Email,
				Role:      r.User.Role,
				CreatedAt: r.User.CreatedAt,
				FullName:  r.Profile.FullName,
				Bio:       r.Profile.Bio,
				City:      r.Profile.City,
				Phone:     r.Profile.Phone,
			}
		}
		if _, ok := seenComments[r.Comment.ID]; !ok {
			seenComments[r.Comment.ID] = struct{}{}
			data.Comments = append(data.Comments, r.Comment)
		}
		if _, ok := seenOrders[r.Order.ID]; !ok {
			seenOrders[r.Order.ID] = struct{}{}
			data.Orders = append(data.Orders, r.Order)
		}
	}
	return data
}
