package entity

// Profile mirrors the profiles table. One-to-one with User; the owning
// user id doubles as the profile id.
type Profile struct {
	UserID   int64
	FullName string
	Bio      string
	City     string
	Phone    string
}
