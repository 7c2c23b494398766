package user

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required"`
	Password string  `json:"password" form:"password" binding:"required"`
	Email    *string `json:"email" form:"email"`
	FullName *string `json:"full_name" form:"full_name"`
	Role     *string `json:"role" form:"role" binding:"omitempty,oneof=admin hr employee"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password" form:"old_password"`
	Password    *string `json:"password" form:"password"`
	Email       *string `json:"email" form:"email"`
	FullName    *string `json:"full_name" form:"full_name"`
}
