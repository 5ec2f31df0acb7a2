// Package repository реализует хранилище данных на основе PostgreSQL.
// Сервис back-office использует таблицы клиентов и пластинок,
// сервис rental — журнал аренды. Все операции однострочные,
// транзакций между записями аренды нет.
package repository

import (
	"context"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Ошибки уровня хранилища. Обработчики транслируют их в HTTP-статусы.
var (
	// ErrClientNotFound возвращается, когда клиент с таким email не найден.
	ErrClientNotFound = errors.New("client not found")
	// ErrClientExists возвращается при попытке повторной регистрации email.
	ErrClientExists = errors.New("client already exists")
	// ErrVinylNotFound возвращается, когда пластинка с таким названием не найдена.
	ErrVinylNotFound = errors.New("vinyl not found")
	// ErrVinylExists возвращается при попытке создать пластинку с занятым названием.
	ErrVinylExists = errors.New("vinyl already exists")
	// ErrRentalNotFound возвращается, когда подходящая запись аренды отсутствует.
	ErrRentalNotFound = errors.New("rental not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
