package models

import "time"

// User is a registered field worker
type User struct {
	ID string `db:"id"`

	// TelegramID is the worker's Telegram user ID
	TelegramID int64 `db:"telegram_id"`

	// ChatID is the private chat the bot talks to the worker in
	ChatID int64 `db:"chat_id"`

	Name      string    `db:"name"`
	CompanyID *string   `db:"company_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Company holds the settings shared by a company's workers
type Company struct {
	ID   string `db:"id"`
	Name string `db:"name"`

	// WorkStart and WorkEnd are "HH:MM" times of day
	WorkStart string `db:"work_start"`
	WorkEnd   string `db:"work_end"`

	// Timezone is an IANA zone name, empty means UTC
	Timezone string `db:"timezone"`
}
