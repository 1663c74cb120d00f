package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// pageFromQuery parses the page/limit query parameters used by all list
// endpoints. Absent or malformed values fall back to the defaults applied
// by ports.Page.Normalize.
func pageFromQuery(c echo.Context) ports.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.Page{Number: page, Limit: limit}
}
