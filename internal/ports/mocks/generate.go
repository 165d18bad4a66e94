//go:generate mockgen -source=../place_cache.go     -destination=./mock_place_cache.go     -package=mocks
//go:generate mockgen -source=../rate_governor.go   -destination=./mock_rate_governor.go   -package=mocks
//go:generate mockgen -source=../search_provider.go -destination=./mock_search_provider.go -package=mocks
//go:generate mockgen -source=../geocoder.go        -destination=./mock_geocoder.go        -package=mocks
//go:generate mockgen -source=../plan_generator.go  -destination=./mock_plan_generator.go  -package=mocks
//go:generate mockgen -source=../planner_service.go -destination=./mock_planner_service.go -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks

package mocks
