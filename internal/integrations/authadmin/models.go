package authadmin

// CreateUserRequest запрос на создание пользователя в провайдере аутентификации
type CreateUserRequest struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	EmailConfirm bool         `json:"email_confirm"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type UserMetadata struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

// User пользователь провайдера аутентификации
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse модель ошибки провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e ErrorResponse) Text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}
