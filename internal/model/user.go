package model

import "strconv"

// UserID - стабильный идентификатор пользователя Telegram
type UserID int64

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// APIKey - ключ API сервиса сокращения ссылок, выданный пользователю
type APIKey string

func (k APIKey) String() string {
	return string(k)
}

// UserAccount представляет запись пользователя в хранилище
// DisplayName используется только для приветствий и логов
type UserAccount struct {
	UserID      UserID
	DisplayName string
}

// UserCredential представляет сохраненный ключ API пользователя
// Не более одного ключа на пользователя, повторный connect перезаписывает
type UserCredential struct {
	UserID UserID
	APIKey APIKey
}
