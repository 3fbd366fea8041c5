package dto

type UpdateProfileRequest struct {
	Age    *int   `json:"age" form:"age"`
	Gender string `json:"gender" form:"gender"`
}

type CreateSessionRequest struct {
	Notes string `json:"notes" form:"notes"`
}
