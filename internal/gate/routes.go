package gate

// LoginPath is where DeniedUnauthenticated redirects to.
const LoginPath = "/login"

// Route describes one entry of the client-side route table.
type Route struct {
	Path      string
	Name      string
	Protected bool
	AdminOnly bool
	NotFound  bool
}

var routes = []Route{
	{Path: "/", Name: "Home", Protected: true},
	{Path: "/about", Name: "About", Protected: true},
	{Path: LoginPath, Name: "Login"},
	{Path: "/blindboxes", Name: "BlindBoxes", Protected: true},
	{Path: "/admin/dashboard", Name: "AdminDashboard", Protected: true, AdminOnly: true},
	{Path: "/admin/brands", Name: "Brands", Protected: true, AdminOnly: true},
	{Path: "/admin/blindboxes", Name: "BlindBoxes", Protected: true, AdminOnly: true},
}

// legacyRedirects maps retired paths to their replacements.
var legacyRedirects = map[string]string{
	"/dashboard": "/blindboxes",
	"/user-form": "/about",
}

// Resolve maps a requested path to its route, following legacy redirects.
// Unknown paths resolve to the catch-all not-found route.
func Resolve(path string) Route {
	if target, ok := legacyRedirects[path]; ok {
		path = target
	}
	for _, r := range routes {
		if r.Path == path {
			return r
		}
	}
	return Route{Path: path, Name: "NotFound", NotFound: true}
}

// Routes returns the route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
