package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/Gunvolt24/shop_backend/pkg/metrics"
)

// Проверка, что CustomerService удовлетворяет порту CustomerAccount.
var _ ports.CustomerAccount = (*CustomerService)(nil)

// CustomerService — прикладная логика аккаунта покупателя (без знаний о транспорте).
// Сравнение паролей живёт здесь: хранилище паролей не сравнивает и не хэширует.
type CustomerService struct {
	repo      ports.CustomerRepository // хранилище покупателей
	tokens    ports.TokenIssuer        // выпуск токенов доступа
	log       ports.Logger             // логгер
	validator ports.CustomerValidator  // валидация входных данных
}

// NewCustomerService — DI-конструктор.
func NewCustomerService(
	repo ports.CustomerRepository,
	tokens ports.TokenIssuer,
	log ports.Logger,
	validator ports.CustomerValidator,
) *CustomerService {
	return &CustomerService{
		repo:      repo,
		tokens:    tokens,
		log:       log,
		validator: validator,
	}
}

// Register — регистрация покупателя:
//  1. валидация входных данных (вернёт validate.ErrInvalidRequest при проблемах);
//  2. проверка занятости email через ExistsByEmail — Save уникальность не проверяет;
//  3. вставка и возврат записи с присвоенным id.
func (s *CustomerService) Register(ctx context.Context, email, username, password string) (*domain.Customer, error) {
	if err := s.validator.ValidateRegistration(ctx, email, username, password); err != nil {
		s.log.Warnf(ctx, "registration rejected email=%s err=%v", email, err)
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Errorf(ctx, "repo.ExistsByEmail failed email=%s err=%v", email, err)
		return nil, err
	}
	if taken {
		s.log.Warnf(ctx, "registration rejected: email taken email=%s", email)
		return nil, domain.ErrEmailTaken
	}

	customer := &domain.Customer{Email: email, Username: username, Password: password}
	id, err := s.repo.Save(ctx, customer)
	if err != nil {
		s.log.Errorf(ctx, "repo.Save failed email=%s err=%v", email, err)
		return nil, fmt.Errorf("save customer: %w", err)
	}
	customer.ID = id

	metrics.RegistrationsTotal.Inc()
	s.log.Infof(ctx, "customer registered id=%d email=%s", id, email)
	return customer, nil
}

// Authenticate — вход по email и паролю; выпускает токен доступа.
// Отсутствие покупателя и неверный пароль неразличимы для вызывающего.
func (s *CustomerService) Authenticate(ctx context.Context, email, password string) (string, error) {
	customer, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByEmail failed email=%s err=%v", email, err)
		return "", err
	}
	if customer == nil || customer.Password != password {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Warnf(ctx, "login failed email=%s", email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(customer.ID, customer.Username)
	if err != nil {
		s.log.Errorf(ctx, "token issue failed id=%d err=%v", customer.ID, err)
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Infof(ctx, "customer logged in id=%d", customer.ID)
	return token, nil
}

// Profile — данные покупателя по id из токена.
// Запись могла быть удалена после выпуска токена, поэтому отсутствие — ошибка.
func (s *CustomerService) Profile(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidCustomer
	}
	return customer, nil
}

// UpdateProfile — смена имени пользователя и пароля.
// Требует подтверждения текущим паролем; email не меняется никогда.
func (s *CustomerService) UpdateProfile(
	ctx context.Context,
	id int64,
	currentPassword, newUsername, newPassword string,
) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidCustomer
	}
	if customer.Password != currentPassword {
		s.log.Warnf(ctx, "profile update rejected: wrong password id=%d", id)
		return nil, domain.ErrPasswordMismatch
	}

	if err := s.validator.ValidateUpdate(ctx, newUsername, newPassword); err != nil {
		s.log.Warnf(ctx, "profile update rejected id=%d err=%v", id, err)
		return nil, err
	}

	updated := &domain.Customer{
		ID:       id,
		Email:    customer.Email, // email неизменяем
		Username: newUsername,
		Password: newPassword,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		s.log.Errorf(ctx, "repo.Update failed id=%d err=%v", id, err)
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Infof(ctx, "customer updated id=%d", id)
	return updated, nil
}

// Delete — удаление аккаунта ("delete me"). Повторный вызов — no-op.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.DeleteByID failed id=%d err=%v", id, err)
		return err
	}
	s.log.Infof(ctx, "customer deleted id=%d", id)
	return nil
}
