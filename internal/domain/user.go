package domain

type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}
