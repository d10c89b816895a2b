package domain

// Category groups a user's transactions. Names are unique per user.
type Category struct {
	CategoryID  string `json:"categoryID"` // Primary Key (UUID)
	UserID      string `json:"userID"`     // FK -> User.userID (Not Null)
	Name        string `json:"name"`
	Description string `json:"description"` // Nullable
	AuditFields
}
