package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"petsitter/internal/database"
	"petsitter/internal/domain"
	"petsitter/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWorld struct {
	router   *gin.Engine
	customer *domain.User
	sitter   *domain.User
	listing  *domain.SitterService
	pet      *domain.Pet
	address  *domain.Address
}

func setupTestWorld(t *testing.T) *testWorld {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:order_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	listingRepo := repository.NewSitterServiceRepository(db)
	petRepo := repository.NewPetRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	customer := &domain.User{Username: "priya", Email: "priya@mail.com", PasswordHash: "x", Role: domain.RoleNormalUser}
	require.NoError(t, userRepo.Create(ctx, customer))
	require.NoError(t, userRepo.SaveProfile(ctx, &domain.Profile{
		UserID: customer.ID, Role: domain.RoleNormalUser, Verified: true,
	}))

	sitter := &domain.User{Username: "ravi", Email: "ravi@petcare.com", PasswordHash: "x", Role: domain.RolePetsitter}
	require.NoError(t, userRepo.Create(ctx, sitter))
	require.NoError(t, userRepo.SaveProfile(ctx, &domain.Profile{
		UserID: sitter.ID, Role: domain.RolePetsitter,
	}))

	customerAddr := &domain.Address{UserID: customer.ID, Address: "10 MG Road", City: "Pune"}
	require.NoError(t, addressRepo.Create(ctx, customerAddr))
	sitterAddr := &domain.Address{UserID: sitter.ID, Address: "22 FC Road", City: "Pune"}
	require.NoError(t, addressRepo.Create(ctx, sitterAddr))

	svc := &domain.Service{Name: "Dog Walking", PetType: domain.PetDog}
	require.NoError(t, serviceRepo.Create(ctx, svc))

	listing := &domain.SitterService{
		UserID: sitter.ID, ServiceID: svc.ID, AddressID: sitterAddr.ID, Rate: 20,
	}
	require.NoError(t, listingRepo.Create(ctx, listing))

	petRow := &domain.Pet{UserID: customer.ID, Name: "Bruno", Type: domain.PetDog}
	require.NoError(t, petRepo.Create(ctx, petRow))

	orderService := NewService(orderRepo, userRepo, listingRepo, serviceRepo, petRepo, addressRepo, nil)
	handler := NewHandler(orderService)

	r := gin.New()
	api := r.Group("/api")
	handler.RegisterRoutes(api)

	return &testWorld{
		router:   r,
		customer: customer,
		sitter:   sitter,
		listing:  listing,
		pet:      petRow,
		address:  customerAddr,
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func (w *testWorld) createBody() map[string]any {
	return map[string]any{
		"normal_user_id":    w.customer.ID,
		"petsitter_user_id": w.sitter.ID,
		"service_model_id":  w.listing.ID,
		"pet_id":            w.pet.ID,
		"user_address_id":   w.address.ID,
		"quantity":          3,
		"start_datetime":    "2026-09-15T10:00:00Z",
	}
}

func decodeOrder(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestOrderEndpoints_CreateAndLifecycle(t *testing.T) {
	w := setupTestWorld(t)

	rr := doJSON(w.router, http.MethodPost, "/api/orders/", w.createBody())
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	created := decodeOrder(t, rr)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, 60.0, created["final_rate"])
	assert.Equal(t, "waiting", created["msg_for_user"])
	assert.Equal(t, "waiting", created["msg_for_petsitter"])
	assert.NotNil(t, created["normal_user"])
	assert.NotNil(t, created["service_model"])

	orderID := int64(created["id"].(float64))

	rr = doJSON(w.router, http.MethodPatch, fmt.Sprintf("/api/orders/%d/approve/", orderID), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "approved", decodeOrder(t, rr)["status"])

	rr = doJSON(w.router, http.MethodPatch, fmt.Sprintf("/api/orders/%d/complete/", orderID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "completed", decodeOrder(t, rr)["status"])

	// Transitions carry no preconditions: approving a completed order works.
	rr = doJSON(w.router, http.MethodPatch, fmt.Sprintf("/api/orders/%d/approve/", orderID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "approved", decodeOrder(t, rr)["status"])

	rr = doJSON(w.router, http.MethodGet, fmt.Sprintf("/api/users/%d/orders/", w.customer.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestOrderEndpoints_CreateValidation(t *testing.T) {
	w := setupTestWorld(t)

	// Missing required fields
	rr := doJSON(w.router, http.MethodPost, "/api/orders/", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t,
		`{"error":"normal_user_id, petsitter_user_id, service_model_id, pet_id, user_address_id, start_datetime are required"}`,
		rr.Body.String())

	// Unknown referenced row
	body := w.createBody()
	body["pet_id"] = 9999
	rr = doJSON(w.router, http.MethodPost, "/api/orders/", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"Invalid user, service_model, pet, or address ID"}`, rr.Body.String())

	// Zero quantity
	body = w.createBody()
	body["quantity"] = 0
	rr = doJSON(w.router, http.MethodPost, "/api/orders/", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"Quantity must be positive"}`, rr.Body.String())

	// Garbage datetime
	body = w.createBody()
	body["start_datetime"] = "soon"
	rr = doJSON(w.router, http.MethodPost, "/api/orders/", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"Invalid start_datetime format. Use ISO format"}`, rr.Body.String())

	// Sitter's address presented as the customer's
	body = w.createBody()
	body["user_address_id"] = w.listing.AddressID
	rr = doJSON(w.router, http.MethodPost, "/api/orders/", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"user_address_id must belong to normal_user_id"}`, rr.Body.String())
}

func TestOrderEndpoints_UnknownOrder(t *testing.T) {
	w := setupTestWorld(t)

	rr := doJSON(w.router, http.MethodPatch, "/api/orders/9999/approve/", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"error":"Order not found"}`, rr.Body.String())

	rr = doJSON(w.router, http.MethodPatch, "/api/orders/9999/review/", map[string]any{
		"user_id": 1, "review": "x",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"error":"Order or user not found"}`, rr.Body.String())
}

func TestOrderEndpoints_Messages(t *testing.T) {
	w := setupTestWorld(t)

	rr := doJSON(w.router, http.MethodPost, "/api/orders/", w.createBody())
	require.Equal(t, http.StatusCreated, rr.Code)
	orderID := int64(decodeOrder(t, rr)["id"].(float64))

	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/message-to-petsitter/", orderID),
		map[string]any{"message": "please arrive by 9am"})
	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeOrder(t, rr)
	assert.Equal(t, "please arrive by 9am", out["msg_for_petsitter"])
	assert.Equal(t, "waiting", out["msg_for_user"])

	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/message-to-user/", orderID),
		map[string]any{"message": "on my way"})
	require.Equal(t, http.StatusOK, rr.Code)
	out = decodeOrder(t, rr)
	assert.Equal(t, "on my way", out["msg_for_user"])
	assert.Equal(t, "please arrive by 9am", out["msg_for_petsitter"])

	// Missing message body
	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/message-to-user/", orderID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"message is required"}`, rr.Body.String())
}

func TestOrderEndpoints_Reviews(t *testing.T) {
	w := setupTestWorld(t)

	rr := doJSON(w.router, http.MethodPost, "/api/orders/", w.createBody())
	require.Equal(t, http.StatusCreated, rr.Code)
	orderID := int64(decodeOrder(t, rr)["id"].(float64))

	// Customer reviews the sitter
	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/review/", orderID),
		map[string]any{"user_id": w.customer.ID, "review": "great sitter", "rating": 5})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	out := decodeOrder(t, rr)
	assert.Equal(t, "great sitter", out["rating_review_for_petsitter"])
	assert.Equal(t, 5.0, out["rating_for_petsitter"])
	assert.Nil(t, out["rating_for_user"])

	// Sitter reviews the customer, rating passed as a string
	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/review/", orderID),
		map[string]any{"user_id": w.sitter.ID, "review": "lovely dog", "rating": "4"})
	require.Equal(t, http.StatusOK, rr.Code)
	out = decodeOrder(t, rr)
	assert.Equal(t, "lovely dog", out["rating_review_for_user"])
	assert.Equal(t, 4.0, out["rating_for_user"])
	assert.Equal(t, 5.0, out["rating_for_petsitter"])

	// Out-of-range rating
	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/review/", orderID),
		map[string]any{"user_id": w.customer.ID, "review": "x", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"error":"Rating must be between 1 and 5"}`, rr.Body.String())

	// Third party
	rr = doJSON(w.router, http.MethodPatch,
		fmt.Sprintf("/api/orders/%d/review/", orderID),
		map[string]any{"user_id": w.sitter.ID + 100, "review": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"error":"Order or user not found"}`, rr.Body.String())
}

func TestOrderEndpoints_RateFollowsListing(t *testing.T) {
	w := setupTestWorld(t)

	rr := doJSON(w.router, http.MethodPost, "/api/orders/", w.createBody())
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeOrder(t, rr)
	require.Equal(t, 60.0, created["final_rate"])
	orderID := int64(created["id"].(float64))

	// Listing rate changes after booking; the next save recomputes.
	dsn := fmt.Sprintf("file:order_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE sitter_services SET rate = 25 WHERE id = ?", w.listing.ID).Error)

	rr = doJSON(w.router, http.MethodPatch, fmt.Sprintf("/api/orders/%d/approve/", orderID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 75.0, decodeOrder(t, rr)["final_rate"])
}
