package create_user

import "github.com/google/uuid"

// Request модель запроса на создание пользователя
type Request struct {
	ActorID    uuid.UUID // Владелец bearer токена
	Email      string
	FullName   string
	Department string
}

// Response созданный пользователь. Пароль возвращается один раз и нигде не хранится
type Response struct {
	UserID       string
	Email        string
	TempPassword string
}
