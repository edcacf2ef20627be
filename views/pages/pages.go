package pages

import "github.com/a-h/templ"

// HTMXSrc is the htmx build the pages load.
const HTMXSrc = "https://unpkg.com/htmx.org@1.9.12"

// Container is a mounted page region whose content a render pass fully replaces.
type Container struct {
	ID   string
	Body templ.Component
}
