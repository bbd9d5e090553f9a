package domain

// User is a mini-app profile keyed by the Telegram identity supplied by the
// caller. Optional profile fields are pointers so an unset value stays null
// all the way to the JSON surface.
type User struct {
	ID         int64
	TgID       int64
	FirstName  string
	LastName   *string
	MiddleName *string
	Age        *int64
	About      *string
	Drinks     *string
	Topics     *string
	Location   *string
	Balance    float64
	Subscribed bool
}
