package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

const itemPath = "/{id:[0-9]+}"

// Init builds the router. It must be called once per Handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	router.Use(h.withCORS)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/", h.getSitemap)
	router.Post("/login", h.login)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	users := newResource[models.UserCreateRequest, models.UserUpdateRequest, models.User](
		"user", app.MsgUserNotFound, h.services.UserService)
	router.Post("/user", users.create)
	router.Get("/user", users.list)
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/user"+itemPath, users.update)
		r.Get("/user"+itemPath, users.get)
		r.Delete("/user"+itemPath, users.delete)
	})

	registerResource(router, "/product", newResource[models.ProductCreateRequest, models.ProductUpdateRequest, models.Product](
		"product", app.MsgProductNotFound, h.services.ProductService))
	registerResource(router, "/address", newResource[models.AddressCreateRequest, models.AddressUpdateRequest, models.Address](
		"address", app.MsgAddressNotFound, h.services.AddressService))
	registerResource(router, "/billingaddress", newResource[models.BillingAddressCreateRequest, models.BillingAddressUpdateRequest, models.BillingAddress](
		"billing address", app.MsgBillingAddressNotFound, h.services.BillingAddressService))
	registerResource(router, "/picture", newResource[models.PictureCreateRequest, models.PictureUpdateRequest, models.Picture](
		"picture", app.MsgPictureNotFound, h.services.PictureService))

	router.MethodNotAllowed(invalidMethod)
	router.NotFound(notFound)

	h.sitemap = buildSitemap(router)

	return router
}

func registerResource[C, U, E any](router chi.Router, path string, res *resource[C, U, E]) {
	router.Post(path, res.create)
	router.Get(path, res.list)
	router.Put(path+itemPath, res.update)
	router.Get(path+itemPath, res.get)
	router.Delete(path+itemPath, res.delete)
}

// buildSitemap lists every registered method/path pair sorted by path, then
// method.
func buildSitemap(router chi.Routes) models.Sitemap {
	routes := make([]models.Route, 0)
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, models.Route{Method: method, Path: route})
		return nil
	})

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	return models.Sitemap{Routes: routes}
}

func (h *Handler) getSitemap(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.sitemap, http.StatusOK)
}
