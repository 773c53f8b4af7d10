package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

func decodeError(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestResource_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantBody   string
		wantMsg    string
	}{
		{
			name:       "ok",
			body:       `{"productName":"Ball","productPrice":"1.50"}`,
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "absent body",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You need to specify the request body as a json object",
		},
		{
			name:       "array body",
			body:       `[1,2]`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You need to specify the request body as a json object",
		},
		{
			name:       "wrong field type",
			body:       `{"productName": 5}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You need to specify the request body as a json object",
		},
		{
			name: "missing required field",
			body: `{"productName":"Ball"}`,
			createErr: errors.Join(service.ErrValidation,
				&validators.ValidationError{Message: "You need to specify the product price"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You need to specify the product price",
		},
		{
			name:       "duplicate name",
			body:       `{"productName":"Ball","productPrice":"1"}`,
			createErr:  store.ErrConstraintViolation,
			wantStatus: http.StatusBadRequest,
			wantMsg:    store.ErrConstraintViolation.Error(),
		},
		{
			name:       "storage failure",
			body:       `{"productName":"Ball","productPrice":"1"}`,
			createErr:  store.ErrExecutingStatement,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := fullServices()
			services.ProductService = &fakeProductService{
				createFn: func(ctx context.Context, req models.ProductCreateRequest) (int64, error) {
					require.NotNil(t, req.Name)
					return 1, tt.createErr
				},
			}

			rr := do(t, newTestRouter(t, services), http.MethodPost, "/product", tt.body, "Content-Type", "application/json")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
				return
			}
			resp := decodeError(t, rr.Body.Bytes())
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestResource_List(t *testing.T) {
	services := fullServices()
	services.PictureService = &fakePictureService{
		listFn: func(ctx context.Context) ([]models.Picture, error) {
			return []models.Picture{{ID: 1, URL: "http://img", ProductID: 2}}, nil
		},
	}

	rr := do(t, newTestRouter(t, services), http.MethodGet, "/picture", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"Picture URL":"http://img","product Id":2}]`, rr.Body.String())
}

func TestResource_TrailingSlashIgnored(t *testing.T) {
	services := fullServices()
	services.AddressService = &fakeAddressService{
		listFn: func(ctx context.Context) ([]models.Address, error) { return []models.Address{}, nil },
	}

	rr := do(t, newTestRouter(t, services), http.MethodGet, "/address/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestResource_Get(t *testing.T) {
	services := fullServices()
	services.AddressService = &fakeAddressService{
		getFn: func(ctx context.Context, id int64) (models.Address, error) {
			if id != 7 {
				return models.Address{}, store.ErrNotFound
			}
			return models.Address{ID: 7, Street: "Main", UserID: 3}, nil
		},
	}
	router := newTestRouter(t, services)

	t.Run("found", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/address/7", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, float64(7), got["street id"])
		assert.Equal(t, "Main", got["User Street"])
		assert.Nil(t, got["Same as Billing Address"])
		assert.Equal(t, float64(3), got["user"])
	})

	t.Run("absent", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/address/8", "")
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Address not found", decodeError(t, rr.Body.Bytes()).Message)
	})

	t.Run("non numeric id does not match", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/address/abc", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("overflowing id", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/address/99999999999999999999", "")
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Address not found", decodeError(t, rr.Body.Bytes()).Message)
	})
}

func TestResource_Update(t *testing.T) {
	var got models.ProductUpdateRequest
	services := fullServices()
	services.ProductService = &fakeProductService{
		updateFn: func(ctx context.Context, id int64, req models.ProductUpdateRequest) (models.Product, error) {
			if id == 404 {
				return models.Product{}, store.ErrNotFound
			}
			got = req
			return models.Product{ID: id, Name: "Ball", Price: *req.Price, Pictures: []models.Picture{}}, nil
		},
	}
	router := newTestRouter(t, services)

	t.Run("price only", func(t *testing.T) {
		rr := do(t, router, http.MethodPut, "/product/2", `{"productPrice":"9.99","productCategory":"ignored"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		assert.Nil(t, got.Name)
		require.NotNil(t, got.Price)
		assert.Equal(t, "9.99", *got.Price)
		assert.JSONEq(t, `{"Product id":2,"ProductName":"Ball","productDescription":null,"productPrice":"9.99",
			"productCategory":null,"productAgeRange":null,"photo":[]}`, rr.Body.String())
	})

	t.Run("absent body", func(t *testing.T) {
		rr := do(t, router, http.MethodPut, "/product/2", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("absent body wins over absent id", func(t *testing.T) {
		rr := do(t, router, http.MethodPut, "/product/404", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("absent id", func(t *testing.T) {
		rr := do(t, router, http.MethodPut, "/product/404", `{"productPrice":"1"}`)
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Product not found", decodeError(t, rr.Body.Bytes()).Message)
	})
}

func TestResource_Delete(t *testing.T) {
	deleted := map[int64]bool{}
	services := fullServices()
	services.BillingAddressService = &fakeBillingAddressService{
		deleteFn: func(ctx context.Context, id int64) error {
			if deleted[id] {
				return store.ErrNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	router := newTestRouter(t, services)

	rr := do(t, router, http.MethodDelete, "/billingaddress/5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = do(t, router, http.MethodDelete, "/billingaddress/5", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Billing Address not found", decodeError(t, rr.Body.Bytes()).Message)
}

func TestResource_UserItemRoutesRequireToken(t *testing.T) {
	services := fullServices()
	services.UserService = &fakeUserService{
		getFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, store.ErrNotFound
		},
		listFn: func(ctx context.Context) ([]models.User, error) { return []models.User{}, nil },
	}
	router := newTestRouter(t, services)

	t.Run("collection is public", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/user", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method+" without token", func(t *testing.T) {
			rr := do(t, router, method, "/user/999999", `{}`)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rr.Body.Bytes()).Message)
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/user/999999", "", "Authorization", "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token and absent user", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/user/999999", "", "Authorization", "Bearer good")
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User not found", decodeError(t, rr.Body.Bytes()).Message)
	})
}
