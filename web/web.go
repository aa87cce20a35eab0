// Package web embeds the single-page frontend. Every client-side route serves
// the same index.html; the JavaScript router maps the path to a page component.
package web

import "embed"

//go:embed static
var Static embed.FS

// IndexFile is the entry document served for every client-side route.
const IndexFile = "static/index.html"

// Routes are the client-side paths the router recognises. The root path
// redirects to /login in the client router itself.
var Routes = []string{"/login", "/register", "/inicioSesion", "/promociones"}
