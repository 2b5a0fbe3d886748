package entity

// JoinedRow is one row of the four-way dashboard join. The column order of
// that join (users, comments, orders, profiles) is a structural contract;
// the query layer decodes it into named fields so a change in column order
// breaks loudly at the scan site instead of silently shifting offsets.
type JoinedRow struct {
	User    User
	Comment Comment
	Order   Order
	Profile Profile
}
