package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"
)

func TestCartList_EmptyCartIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Tokens = &stubTokens{claims: userClaims(domain.RoleUser)}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestCartReplace_NoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Tokens = &stubTokens{claims: userClaims(domain.RoleUser)}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"products":[{"productId":"p1","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCartReplace_RejectsZeroQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Tokens = &stubTokens{claims: userClaims(domain.RoleUser)}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"products":[{"productId":"p1","quantity":0}]}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartTotal_PassesDiscountCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Tokens = &stubTokens{claims: userClaims(domain.RoleUser)}
	deps.Cart = &stubCartService{total: &cartsvc.Total{
		Cart:          []domain.CartItem{},
		Total:         decimal.NewFromInt(500),
		DiscountTotal: decimal.NewFromInt(425),
	}}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart/total?discountCode=SUMMER15", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"discountTotal":"425"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckout_ReturnsSessionURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Tokens = &stubTokens{claims: userClaims(domain.RoleUser)}
	deps.Cart = &stubCartService{checkoutURL: "https://checkout.stripe.com/pay/cs_test"}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart/checkout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "cs_test") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCart_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps())
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart/total", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
