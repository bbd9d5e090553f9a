package domain

// Message is immutable once created and never deleted.
type Message struct {
	ID        int64
	FromTgID  int64
	ToTgID    int64
	Text      string
	CreatedAt string
}
