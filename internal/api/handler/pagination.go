package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

const (
	defaultPageSize = 100
	maxPageSize     = 100
)

// pageFromRequest parses the page and pageSize query parameters.
// Out-of-range or unparseable values fall back to the defaults.
func pageFromRequest(c echo.Context) ports.Page {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil || size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	return ports.Page{Page: page, Size: size}
}

// setLinkHeader emits an RFC 8288 Link header with first/prev/next/last
// relations when the collection spans more than one page.
func setLinkHeader(c echo.Context, baseURL, resource string, page ports.Page, total int64) {
	url := baseURL + resource
	maxPage := int((total + int64(page.Size) - 1) / int64(page.Size))

	var links []string
	link := func(rel string, p int) string {
		return fmt.Sprintf("<%s?page=%d&pageSize=%d>; rel=%q", url, p, page.Size, rel)
	}

	if page.Page > 1 {
		links = append(links, link("first", 1), link("prev", page.Page-1))
	}
	if page.Page < maxPage {
		links = append(links, link("next", page.Page+1), link("last", maxPage))
	}

	if len(links) > 0 {
		c.Response().Header().Set("Link", strings.Join(links, ", "))
	}
}
