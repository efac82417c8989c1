package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/repository/mocks"
	"catalog-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductHandler() (*mocks.MockProductRepository, *ProductHandler) {
	repo := new(mocks.MockProductRepository)
	svc := service.NewProductService(repo, zap.NewNop())
	return repo, NewProductHandler(svc)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestProductHandler_Create(t *testing.T) {
	e := echo.New()

	t.Run("Valid product gets defaults", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("CountBySlug", mock.Anything, "a").Return(int64(0), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Product).ID = 1
		}).Return(nil).Once()

		req, rec := jsonRequest(http.MethodPost, "/api/products",
			`{"title":"A","slug":"a","category":"Marble Deities"}`)
		c := e.NewContext(req, rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Product model.Product `json:"product"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "a", resp.Product.Slug)
		assert.Equal(t, 0, resp.Product.Stock)
		assert.False(t, resp.Product.IsFeatured)
	})

	t.Run("Missing category", func(t *testing.T) {
		_, h := newProductHandler()

		req, rec := jsonRequest(http.MethodPost, "/api/products", `{"title":"A","slug":"a"}`)
		c := e.NewContext(req, rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("CountBySlug", mock.Anything, "a").Return(int64(1), nil).Once()

		req, rec := jsonRequest(http.MethodPost, "/api/products",
			`{"title":"A","slug":"a","category":"Marble Deities"}`)
		c := e.NewContext(req, rec)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProductHandler_Get(t *testing.T) {
	e := echo.New()

	t.Run("Unknown product", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("GetByID", mock.Anything, uint(9)).Return(nil, repository.ErrProductNotFound).Once()

		req, rec := jsonRequest(http.MethodGet, "/api/products/9", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("9")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		_, h := newProductHandler()

		req, rec := jsonRequest(http.MethodGet, "/api/products/abc", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("By slug", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("GetBySlug", mock.Anything, "ganesha").Return(&model.Product{ID: 2, Slug: "ganesha"}, nil).Once()

		req, rec := jsonRequest(http.MethodGet, "/api/products/slug/ganesha", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues("ganesha")

		require.NoError(t, h.GetBySlug(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"ganesha"`)
	})
}

func TestProductHandler_Update(t *testing.T) {
	e := echo.New()

	t.Run("Slug in payload is ignored", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("GetByID", mock.Anything, uint(3)).Return(&model.Product{
			ID: 3, Title: "A", Slug: "a", Category: "Marble Deities",
		}, nil).Once()
		repo.On("Save", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil).Once()

		req, rec := jsonRequest(http.MethodPut, "/api/products/3", `{"slug":"b","stock":4}`)
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Product model.Product `json:"product"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "a", resp.Product.Slug)
		assert.Equal(t, 4, resp.Product.Stock)
	})

	t.Run("Unknown product", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("GetByID", mock.Anything, uint(9)).Return(nil, repository.ErrProductNotFound).Once()

		req, rec := jsonRequest(http.MethodPut, "/api/products/9", `{"stock":4}`)
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("9")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	e := echo.New()

	t.Run("Existing then missing", func(t *testing.T) {
		repo, h := newProductHandler()
		repo.On("Delete", mock.Anything, uint(3)).Return(nil).Once()
		repo.On("Delete", mock.Anything, uint(3)).Return(repository.ErrProductNotFound).Once()

		req, rec := jsonRequest(http.MethodDelete, "/api/products/3", "")
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = jsonRequest(http.MethodDelete, "/api/products/3", "")
		c = e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	e := echo.New()
	repo, h := newProductHandler()
	repo.On("List", mock.Anything).Return([]model.Product{{ID: 1, Slug: "a"}}, nil).Once()

	req, rec := jsonRequest(http.MethodGet, "/api/products", "")
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products"`)
}
