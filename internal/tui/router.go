package tui

// Route 是界面内的页面路径
type Route string

const (
	RouteRoot    Route = "/"
	RouteUsers   Route = "/users"
	RouteBilling Route = "/billing"
)

// Routes lists the navigable screens in tab order.
var Routes = []Route{RouteUsers, RouteBilling}

// Resolve maps a path to a screen. The root path and unknown paths redirect
// to the users screen.
func Resolve(path string) Route {
	switch Route(path) {
	case RouteUsers, RouteBilling:
		return Route(path)
	default:
		return RouteUsers
	}
}

// next returns the route after r in tab order.
func (r Route) next() Route {
	for i, route := range Routes {
		if route == r {
			return Routes[(i+1)%len(Routes)]
		}
	}
	return Routes[0]
}

func (r Route) title() string {
	switch r {
	case RouteBilling:
		return "Billing"
	default:
		return "Users"
	}
}
