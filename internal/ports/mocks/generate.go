//go:generate mockgen -source=../product_store.go      -destination=./mock_product_store.go      -package=mocks
//go:generate mockgen -source=../product_item_store.go -destination=./mock_product_item_store.go -package=mocks
//go:generate mockgen -source=../product_cache.go      -destination=./mock_product_cache.go      -package=mocks
//go:generate mockgen -source=../message_queue.go      -destination=./mock_message_queue.go      -package=mocks
//go:generate mockgen -source=../change_decoder.go     -destination=./mock_change_decoder.go     -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../services.go           -destination=./mock_services.go           -package=mocks

package mocks
