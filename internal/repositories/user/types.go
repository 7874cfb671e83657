package user

// GetUserByTelegramIDInput contains parameters for looking a worker up by Telegram ID
type GetUserByTelegramIDInput struct {
	TelegramID int64
}

// GetUserInput contains parameters for retrieving a worker
type GetUserInput struct {
	UserID string
}

// GetCompanyInput contains parameters for retrieving a company
type GetCompanyInput struct {
	CompanyID string
}
