package domain

// Customer — покупатель. ID генерируется хранилищем при вставке и далее
// неизменяем; email фиксируется при регистрации и не обновляется.
// Password не сериализуем наружу.
type Customer struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"userName"`
	Password string `json:"-"`
}
