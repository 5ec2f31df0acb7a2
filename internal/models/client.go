// Package models содержит доменные структуры проката виниловых пластинок:
// клиентов, пластинки и записи аренды, а также вспомогательные типы
// для приёма данных из JSON-запросов.
package models

// Client представляет клиента проката. Идентификатор клиента — email,
// он уникален. Баланс хранится в условных единицах и изменяется
// пополнением или списанием при аренде.
type Client struct {
	ID           string  `json:"id,omitempty"` // Сгенерированный идентификатор
	Name         string  `json:"name"`         // Имя клиента
	Email        string  `json:"email"`        // Электронная почта (уникальная)
	Age          int     `json:"age"`          // Возраст
	Gender       string  `json:"gender"`       // Пол
	Balance      float64 `json:"balance"`      // Текущий баланс
	PasswordHash string  `json:"-"`            // Хэш пароля, наружу не отдается
}

// CreateClientRequest используется для приёма данных регистрации клиента.
// Пароль приходит открытым текстом и хэшируется до записи в хранилище.
type CreateClientRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Age      int     `json:"age" validate:"gte=0"`
	Gender   string  `json:"gender"`
	Balance  float64 `json:"balance" validate:"gte=0"`
}

// BalanceRequest описывает изменение баланса клиента.
// Поле Balance — знаковая дельта, прибавляемая к текущему значению,
// а не новое абсолютное значение.
type BalanceRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Balance float64 `json:"balance" validate:"required"`
}

// UpdateClientRequest — частичное обновление данных клиента по email.
// Пустые поля не изменяются.
type UpdateClientRequest struct {
	Email   string   `json:"email" validate:"required,email"`
	Name    string   `json:"name"`
	Age     *int     `json:"age"`
	Gender  string   `json:"gender"`
	Balance *float64 `json:"balance"`
}
