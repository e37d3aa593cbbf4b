package user

import "time"

type User struct {
	ID          int64
	Email       string
	Password    string // bcrypt hash
	DisplayName string
	CreatedAt   time.Time
}

type BaseRequest struct {
	Email    string `json:"email" doc:"User email" format:"email"`
	Password string `json:"password" doc:"Password" minLength:"1"`
}
