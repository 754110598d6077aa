package common

// UserResult is the public projection of a user returned by the API.
// The password hash is never part of it.
type UserResult struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
