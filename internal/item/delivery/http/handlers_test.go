package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"item-catalog/internal/item"
	itemHTTP "item-catalog/internal/item/delivery/http"
	"item-catalog/pkg/response"
)

// fakeUseCase implements item.UseCase with overridable funcs.
type fakeUseCase struct {
	createFunc func(input item.CreateItemInput) (item.CreateItemOutput, error)
	listFunc   func() (item.ListItemsOutput, error)
	detailFunc func(id int64) (item.DetailItemOutput, error)
	updateFunc func(input item.UpdateItemInput) (item.UpdateItemOutput, error)
	deleteFunc func(id int64) error
}

func (f *fakeUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	return f.createFunc(input)
}

func (f *fakeUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	return f.listFunc()
}

func (f *fakeUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	return f.detailFunc(id)
}

func (f *fakeUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	return f.updateFunc(input)
}

func (f *fakeUseCase) Delete(ctx context.Context, id int64) error {
	return f.deleteFunc(id)
}

func newTestRouter(uc item.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := itemHTTP.New(&mockLogger{}, uc)
	itemHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestDetailHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			detailFunc: func(id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{Item: item.Item{ID: id, Name: "Widget", Price: 9.99}}, nil
			},
		})

		w := doRequest(t, engine, http.MethodGet, "/api/v1/items/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Data struct {
				Item struct {
					ID    int64   `json:"id"`
					Name  string  `json:"name"`
					Price float64 `json:"price"`
				} `json:"item"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Item.ID != 1 || resp.Data.Item.Name != "Widget" || resp.Data.Item.Price != 9.99 {
			t.Errorf("unexpected payload: %+v", resp.Data.Item)
		}
	})

	t.Run("Not Found Maps To 404", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			detailFunc: func(id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{}, item.ErrItemNotFound
			},
		})

		w := doRequest(t, engine, http.MethodGet, "/api/v1/items/404", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Store Error Maps To 500", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			detailFunc: func(id int64) (item.DetailItemOutput, error) {
				return item.DetailItemOutput{}, errors.New("mongo down")
			},
		})

		w := doRequest(t, engine, http.MethodGet, "/api/v1/items/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if strings.Contains(resp.Message, "mongo") {
			t.Errorf("store error details must not leak: %s", resp.Message)
		}
	})

	t.Run("Bad ID Param", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{})

		w := doRequest(t, engine, http.MethodGet, "/api/v1/items/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			createFunc: func(input item.CreateItemInput) (item.CreateItemOutput, error) {
				return item.CreateItemOutput{Item: item.Item{ID: input.ID, Name: input.Name, Price: input.Price}}, nil
			},
		})

		w := doRequest(t, engine, http.MethodPost, "/api/v1/items", `{"id":1,"name":"Widget","price":9.99}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Missing Name", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{})

		w := doRequest(t, engine, http.MethodPost, "/api/v1/items", `{"id":1,"price":9.99}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("Not Found Maps To 404", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			updateFunc: func(input item.UpdateItemInput) (item.UpdateItemOutput, error) {
				return item.UpdateItemOutput{}, item.ErrItemNotFound
			},
		})

		w := doRequest(t, engine, http.MethodPut, "/api/v1/items/404", `{"name":"x","price":1}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ID Comes From URI", func(t *testing.T) {
		var gotID int64
		engine := newTestRouter(&fakeUseCase{
			updateFunc: func(input item.UpdateItemInput) (item.UpdateItemOutput, error) {
				gotID = input.ID
				return item.UpdateItemOutput{Item: item.Item{ID: input.ID, Name: input.Name, Price: input.Price}}, nil
			},
		})

		w := doRequest(t, engine, http.MethodPut, "/api/v1/items/7", `{"name":"Widget","price":7.49}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotID != 7 {
			t.Errorf("expected id 7 from URI, got %d", gotID)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			deleteFunc: func(id int64) error { return nil },
		})

		w := doRequest(t, engine, http.MethodDelete, "/api/v1/items/1", "")
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Not Found Maps To 404", func(t *testing.T) {
		engine := newTestRouter(&fakeUseCase{
			deleteFunc: func(id int64) error { return item.ErrItemNotFound },
		})

		w := doRequest(t, engine, http.MethodDelete, "/api/v1/items/404", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

// mockLogger satisfies log.Logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
