package models

import "time"

// Vinyl представляет пластинку в каталоге. Название логически уникально,
// при этом у пластинки есть отдельный сгенерированный идентификатор,
// по которому ведется журнал аренды.
type Vinyl struct {
	ID           string    `json:"id"`            // Сгенерированный идентификатор (uuid)
	Title        string    `json:"title"`         // Название альбома
	Artist       string    `json:"artist"`        // Исполнитель
	Genre        string    `json:"genre"`         // Жанр
	Price        float64   `json:"price"`         // Стоимость аренды
	Stock        int       `json:"stock"`         // Количество экземпляров на складе
	EntranceDate time.Time `json:"entrance_date"` // Дата поступления в каталог
}

// CreateVinylRequest используется для приёма данных новой пластинки.
// Идентификатор и дата поступления назначаются сервером.
type CreateVinylRequest struct {
	Title  string  `json:"title" validate:"required"`
	Artist string  `json:"artist" validate:"required"`
	Genre  string  `json:"genre" validate:"required"`
	Price  float64 `json:"price" validate:"required,gt=0"`
	Stock  int     `json:"stock" validate:"gte=0"`
}

// PriceRequest описывает изменение цены пластинки. В отличие от остатка
// и баланса здесь передаётся новое абсолютное значение, а не дельта.
type PriceRequest struct {
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// StockRequest описывает изменение остатка пластинки: знаковая дельта
// к текущему значению. Остаток не может стать отрицательным.
type StockRequest struct {
	Title string `json:"title" validate:"required"`
	Stock int    `json:"stock" validate:"required"`
}
