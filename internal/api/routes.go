package api

const (
	HealthCheckRoute = "/healthz"
	AboutRoute       = "/about"

	GenerateTokenRoute = "/v1/token/generate"

	ItemsRoute    = "/v1/items"
	ItemByIDRoute = "/v1/items/{id}"
)
