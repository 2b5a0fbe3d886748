package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpLoginSQL_SpliceAltersStructure(t *testing.T) {
	sql := interpLoginSQL("alice' OR '1'='1", "whatever")
	// The payload escapes the username literal and becomes part of the
	// statement structure.
	assert.Contains(t, sql, "username = 'alice' OR '1'='1'")
	assert.Contains(t, sql, "AND password_hash = 'whatever'")
}

func TestInterpLoginSQL_SingleQueryPredicate(t *testing.T) {
	sql := interpLoginSQL("alice", "pw")
	assert.Equal(t, "SELECT * FROM users WHERE username = 'alice' AND password_hash = 'pw'", sql)
}

func TestInterpJoinSQL_KeepsMismatchedJoinKey(t *testing.T) {
	sql := interpJoinSQL("alice")
	// The comment/order association is deliberately not keyed on the user.
	assert.Contains(t, sql, "JOIN orders o ON c.id = o.user_id")
	assert.Contains(t, sql, "WHERE us.username = 'alice'")
}

func TestInterpSearchSQL_MissingOperator(t *testing.T) {
	sql := interpSearchSQL("bob", 20)
	assert.Equal(t, "SELECT id, username, email FROM users WHERE username = 'bob' OR email 'bob' LIMIT 20", sql)
	// No comparison operator between email and its value.
	assert.NotContains(t, sql, "email =")
	assert.NotContains(t, sql, "email ILIKE")
}

func TestBoundSQL_OnlyPlaceholders(t *testing.T) {
	for _, sql := range []string{boundLoginSQL, boundJoinSQL, boundSearchSQL} {
		assert.NotContains(t, sql, "%s", "bound statements must not be format templates")
		assert.Contains(t, sql, "$1")
	}
	// The credential is never part of the bound login predicate.
	assert.NotContains(t, strings.ToLower(boundLoginSQL), "password_hash =")
	assert.Contains(t, boundSearchSQL, "ILIKE")
}

func TestBoundJoinSQL_JoinsEverythingOnUser(t *testing.T) {
	assert.Contains(t, boundJoinSQL, "JOIN comments c ON us.id = c.user_id")
	assert.Contains(t, boundJoinSQL, "JOIN orders o   ON us.id = o.user_id")
	assert.Contains(t, boundJoinSQL, "JOIN profiles p ON us.id = p.user_id")
}
