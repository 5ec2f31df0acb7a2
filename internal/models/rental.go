package models

import "time"

// Rental представляет одно событие аренды. Пока пластинка на руках,
// ReturnDate равен nil; при возврате дата проставляется ровно один раз,
// обратного перехода нет. Повторная аренда создаёт новую запись.
type Rental struct {
	ClientID   string     `json:"client_id"`             // Email клиента
	VinylID    string     `json:"vinyl_id"`              // Идентификатор пластинки
	RentalDate time.Time  `json:"rental_date"`           // Дата выдачи, неизменяемая
	ReturnDate *time.Time `json:"return_date,omitempty"` // Дата возврата, nil пока аренда открыта
}

// Open сообщает, открыта ли ещё аренда.
func (r *Rental) Open() bool {
	return r.ReturnDate == nil
}

// RentRequest — параметры операций rent и return: клиент и пластинка.
type RentRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required"`
}
