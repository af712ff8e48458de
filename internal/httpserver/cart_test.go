package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetCartEmpty(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(router, http.MethodGet, "/cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", rec.Body.String())
	}
}

func TestAddCartItemDefaultsQuantity(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(router, http.MethodPost, "/cart/items", `{"name":"Blue Shirt","price":799,"image":"img/shirt.jpg"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"quantity":1`) {
		t.Fatalf("expected quantity defaulted to 1: %s", rec.Body.String())
	}
}

func TestAddCartItemTwiceMerges(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"name":"Blue Shirt","price":799,"image":"img/shirt.jpg","quantity":1}`
	doJSON(router, http.MethodPost, "/cart/items", body)
	rec := doJSON(router, http.MethodPost, "/cart/items", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Items []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 || resp.Count != 2 {
		t.Fatalf("expected one merged line with quantity 2, got %+v", resp)
	}
}

func TestAddCartItemInvalid(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(router, http.MethodPost, "/cart/items", `{"name":"","price":10}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSetQuantityAndRemove(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(router, http.MethodPost, "/cart/items", `{"name":"Blue Shirt","price":799,"quantity":1}`)

	rec := doJSON(router, http.MethodPatch, "/cart/items/Blue%20Shirt", `{"quantity":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"quantity":4`) {
		t.Fatalf("expected quantity 4, got %s", rec.Body.String())
	}

	rec = doJSON(router, http.MethodDelete, "/cart/items/Blue%20Shirt", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(router, http.MethodDelete, "/cart/items/Blue%20Shirt", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated removal, got %d", rec.Code)
	}
}

func TestClearCart(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(router, http.MethodPost, "/cart/items", `{"name":"Blue Shirt","price":799,"quantity":2}`)
	rec := doJSON(router, http.MethodDelete, "/cart", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doJSON(router, http.MethodGet, "/cart", "")
	if !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Fatalf("expected empty cart, got %s", rec.Body.String())
	}
}

func TestApplyCoupon(t *testing.T) {
	router, _ := newTestRouter(t)
	doJSON(router, http.MethodPost, "/cart/items", `{"name":"Blue Shirt","price":500,"quantity":2}`)

	rec := doJSON(router, http.MethodPost, "/cart/coupon", `{"code":"SAVE10"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Accepted bool  `json:"accepted"`
		Discount int64 `json:"discount"`
		Total    int64 `json:"total"`
		Subtotal int64 `json:"subtotal"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Accepted || resp.Discount != 100 || resp.Total != 900 || resp.Subtotal != 1000 {
		t.Fatalf("unexpected coupon result: %+v", resp)
	}

	rec = doJSON(router, http.MethodPost, "/cart/coupon", `{"code":"BAD"}`)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Accepted || resp.Discount != 0 || resp.Total != 1000 {
		t.Fatalf("expected rejected coupon reverting to subtotal, got %+v", resp)
	}
}

func TestCartsIsolatedByProfile(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"name":"Blue Shirt","price":799,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(profileHeader, "tab-one")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec2 := doJSON(router, http.MethodGet, "/cart", "")
	if !strings.Contains(rec2.Body.String(), `"count":0`) {
		t.Fatalf("default profile must not see tab-one cart: %s", rec2.Body.String())
	}
}
