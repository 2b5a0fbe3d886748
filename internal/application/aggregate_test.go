package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
)

func joinRows(user entity.User, profile entity.Profile, comments []entity.Comment, orders []entity.Order) []entity.JoinedRow {
	// One row per comment/order pair, the shape the SQL join produces.
	var rows []entity.JoinedRow
	for _, c := range comments {
		for _, o := range orders {
			rows = append(rows, entity.JoinedRow{User: user, Comment: c, Order: o, Profile: profile})
		}
	}
	return rows
}

func TestAggregate_CollapsesCrossProduct(t *testing.T) {
	user := entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: "user"}
	profile := entity.Profile{UserID: 1, FullName: "Alice A.", Bio: "bio", City: "Brno", Phone: "123"}
	comments := []entity.Comment{
		{ID: 10, UserID: 1, Content: "first"},
		{ID: 11, UserID: 1, Content: "second"},
		{ID: 12, UserID: 1, Content: "third"},
	}
	orders := []entity.Order{
		{ID: 20, UserID: 1, ProductID: 7, Quantity: 1, Total: 9.99},
		{ID: 21, UserID: 1, ProductID: 8, Quantity: 2, Total: 19.98},
	}

	rows := joinRows(user, profile, comments, orders)
	require.Len(t, rows, 6) // 3 comments x 2 orders

	data := Aggregate(rows)

	require.NotNil(t, data.Profile)
	assert.Equal(t, "alice", data.Profile.Username)
	assert.Equal(t, "Alice A.", data.Profile.FullName)
	assert.Equal(t, "Brno", data.Profile.City)

	require.Len(t, data.Comments, 3)
	require.Len(t, data.Orders, 2)
	assert.Equal(t, []int64{10, 11, 12}, []int64{data.Comments[0].ID, data.Comments[1].ID, data.Comments[2].ID})
	assert.Equal(t, []int64{20, 21}, []int64{data.Orders[0].ID, data.Orders[1].ID})
}

func TestAggregate_FirstOccurrenceWins(t *testing.T) {
	user := entity.User{ID: 1, Username: "alice"}
	rows := []entity.JoinedRow{
		{User: user, Comment: entity.Comment{ID: 10, Content: "original"}, Order: entity.Order{ID: 20, Total: 1}},
		{User: user, Comment: entity.Comment{ID: 10, Content: "mutated"}, Order: entity.Order{ID: 20, Total: 2}},
	}

	data := Aggregate(rows)

	require.Len(t, data.Comments, 1)
	require.Len(t, data.Orders, 1)
	assert.Equal(t, "original", data.Comments[0].Content)
	assert.Equal(t, float64(1), data.Orders[0].Total)
}

func TestAggregate_Empty(t *testing.T) {
	data := Aggregate(nil)
	assert.Nil(t, data.Profile)
	assert.Empty(t, data.Comments)
	assert.Empty(t, data.Orders)
}

func TestAggregate_ProfileFromFirstRow(t *testing.T) {
	rows := []entity.JoinedRow{
		{
			User:    entity.User{ID: 1, Username: "alice", CreatedAt: time.Unix(1000, 0)},
			Profile: entity.Profile{FullName: "Alice"},
			Comment: entity.Comment{ID: 1},
			Order:   entity.Order{ID: 1},
		},
		{
			User:    entity.User{ID: 1, Username: "alice"},
			Profile: entity.Profile{FullName: "Someone Else"},
			Comment: entity.Comment{ID: 2},
			Order:   entity.Order{ID: 2},
		},
	}

	data := Aggregate(rows)
	require.NotNil(t, data.Profile)
	assert.Equal(t, "Alice", data.Profile.FullName)
}
