package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// crudService is the shape shared by every resource service: C is the
// create request, U the update request and E the returned entity.
type crudService[C, U, E any] interface {
	Create(ctx context.Context, req C) (int64, error)
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int64) (E, error)
	Update(ctx context.Context, id int64, req U) (E, error)
	Delete(ctx context.Context, id int64) error
}

// resource serves the collection and item routes of one entity.
type resource[C, U, E any] struct {
	name     string
	notFound string
	service  crudService[C, U, E]
}

func newResource[C, U, E any](name, notFound string, service crudService[C, U, E]) *resource[C, U, E] {
	return &resource[C, U, E]{name: name, notFound: notFound, service: service}
}

// create answers 200 "ok"; the created row is not echoed back.
func (res *resource[C, U, E]) create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := decodeObject(w, r, &req); err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	id, err := res.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	logger.FromRequest(r).Debug().Str("resource", res.name).Int64("id", id).Msg("created")
	_, _ = utils.WriteText(w, "ok", http.StatusOK)
}

func (res *resource[C, U, E]) list(w http.ResponseWriter, r *http.Request) {
	items, err := res.service.List(r.Context())
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (res *resource[C, U, E]) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	item, err := res.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

// update checks the body before the id so that a bodiless PUT is a 400 even
// for an unknown id.
func (res *resource[C, U, E]) update(w http.ResponseWriter, r *http.Request) {
	var req U
	if err := decodeObject(w, r, &req); err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	item, err := res.service.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (res *resource[C, U, E]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	if err = res.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, res.notFound)
		return
	}

	logger.FromRequest(r).Debug().Str("resource", res.name).Int64("id", id).Msg("deleted")
	_, _ = utils.WriteText(w, "ok", http.StatusOK)
}
