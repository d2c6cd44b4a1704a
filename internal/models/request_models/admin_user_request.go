package request_models

type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	GrantAccess bool   `json:"grantAccess"`
}

type ToggleAccessRequest struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	GrantAccess bool   `json:"grantAccess"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}
