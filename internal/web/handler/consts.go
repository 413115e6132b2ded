package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the site.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = ""
)
