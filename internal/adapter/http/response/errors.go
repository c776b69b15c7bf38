package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Endpoints lists the API resource roots.
type Endpoints struct {
	Airports string `json:"airports"`
	Fares    string `json:"fares"`
	Flights  string `json:"flights"`
}

// APIEndpoints are the resource roots advertised by the banner and the not-found response.
var APIEndpoints = Endpoints{
	Airports: "/api/airports",
	Fares:    "/api/fares",
	Flights:  "/api/flights",
}

// NotFoundBody is returned for routes that do not exist.
type NotFoundBody struct {
	Error              string    `json:"error"`
	Message            string    `json:"message"`
	AvailableEndpoints Endpoints `json:"availableEndpoints"`
}

// NotFound writes a 404 response naming the unmatched path.
func NotFound(c echo.Context, path string) error {
	return c.JSON(http.StatusNotFound, &NotFoundBody{
		Error:              ErrNotFound,
		Message:            "Route " + path + " not found",
		AvailableEndpoints: APIEndpoints,
	})
}
