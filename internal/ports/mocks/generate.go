//go:generate mockgen -source=../customer_repository.go -destination=./mock_customer_repository.go -package=mocks
//go:generate mockgen -source=../order_repository.go    -destination=./mock_order_repository.go    -package=mocks
//go:generate mockgen -source=../token_issuer.go        -destination=./mock_token_issuer.go        -package=mocks
//go:generate mockgen -source=../event_publisher.go     -destination=./mock_event_publisher.go     -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../customer_account.go    -destination=./mock_customer_account.go    -package=mocks
//go:generate mockgen -source=../order_flow.go          -destination=./mock_order_flow.go          -package=mocks

package mocks
