package ports

// TokenIssuer — выпуск и разбор токенов доступа.
type TokenIssuer interface {
	Issue(customerID int64, username string) (string, error)
	Parse(token string) (customerID int64, username string, err error)
}
