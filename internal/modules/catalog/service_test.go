package catalog

import (
	"context"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByPetType(ctx context.Context, pt domain.PetType) ([]domain.Service, error) {
	args := m.Called(ctx, pt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockSitterServiceRepository struct {
	mock.Mock
}

func (m *MockSitterServiceRepository) Create(ctx context.Context, ss *domain.SitterService) error {
	args := m.Called(ctx, ss)
	if ss != nil {
		ss.ID = 30
	}
	return args.Error(0)
}

func (m *MockSitterServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SitterService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SitterService), args.Error(1)
}

func (m *MockSitterServiceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SitterService, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SitterService), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserGate) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockAddressGate struct {
	mock.Mock
}

func (m *MockAddressGate) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func newTestService() (*Service, *MockServiceRepository, *MockSitterServiceRepository, *MockUserGate, *MockAddressGate) {
	services := new(MockServiceRepository)
	listings := new(MockSitterServiceRepository)
	users := new(MockUserGate)
	addrs := new(MockAddressGate)
	return NewService(services, listings, users, addrs), services, listings, users, addrs
}

func TestService_PetChoices(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	choices := svc.PetChoices()

	assert.Len(t, choices, 6)
	assert.Equal(t, PetChoice{Key: "cat", Label: "Cat"}, choices[0])
	assert.Equal(t, PetChoice{Key: "other", Label: "Other"}, choices[5])
}

func TestService_ServicesByPet_InvalidKey(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.ServicesByPet(context.Background(), "dinosaur")

	assert.ErrorIs(t, err, ErrInvalidPetType)
}

func TestService_ServicesByPet_ValidKey(t *testing.T) {
	svc, services, _, _, _ := newTestService()

	services.On("ListByPetType", mock.Anything, domain.PetDog).Return([]domain.Service{
		{ID: 1, Name: "Dog Walking", PetType: domain.PetDog},
	}, nil)

	list, err := svc.ServicesByPet(context.Background(), "dog")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Dog Walking", list[0].Name)
}

func TestService_CreateSitterService_Success(t *testing.T) {
	svc, services, listings, users, addrs := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RolePetsitter}, nil)
	users.On("GetProfile", mock.Anything, int64(2)).Return(&domain.Profile{
		UserID: 2, Role: domain.RolePetsitter,
	}, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40, Name: "Cat Sitting"}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 2}, nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	ss, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 2, ServiceID: 40, AddressID: 50, Rate: "18.5",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(30), ss.ID)
	assert.Equal(t, 18.5, ss.Rate)
	assert.NotNil(t, ss.User)
	assert.NotNil(t, ss.Service)
	assert.NotNil(t, ss.Address)
}

func TestService_CreateSitterService_UnknownReference(t *testing.T) {
	svc, _, listings, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 404, ServiceID: 40, AddressID: 50, Rate: float64(18),
	})

	assert.ErrorIs(t, err, ErrInvalidReference)
	listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateSitterService_AddressOwnership(t *testing.T) {
	svc, services, _, users, addrs := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 9}, nil)

	_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 2, ServiceID: 40, AddressID: 50, Rate: float64(18),
	})

	assert.ErrorIs(t, err, ErrAddressOwnership)
}

func TestService_CreateSitterService_RoleCheckedOnlyWithProfile(t *testing.T) {
	svc, services, listings, users, addrs := newTestService()

	// No profile row: the role check is skipped and creation proceeds.
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleNormalUser}, nil)
	users.On("GetProfile", mock.Anything, int64(2)).Return(nil, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 2}, nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 2, ServiceID: 40, AddressID: 50, Rate: float64(18),
	})

	assert.NoError(t, err)
}

func TestService_CreateSitterService_NotPetsitter(t *testing.T) {
	svc, services, _, users, addrs := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetProfile", mock.Anything, int64(1)).Return(&domain.Profile{
		UserID: 1, Role: domain.RoleNormalUser,
	}, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 1}, nil)

	_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 1, ServiceID: 40, AddressID: 50, Rate: float64(18),
	})

	assert.ErrorIs(t, err, ErrNotPetsitter)
}

func TestService_CreateSitterService_InvalidRate(t *testing.T) {
	svc, services, _, users, addrs := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	users.On("GetProfile", mock.Anything, int64(2)).Return(nil, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 2}, nil)

	_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
		UserID: 2, ServiceID: 40, AddressID: 50, Rate: "cheap",
	})

	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestService_CreateSitterService_NonPositiveRate(t *testing.T) {
	svc, services, _, users, addrs := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	users.On("GetProfile", mock.Anything, int64(2)).Return(nil, nil)
	services.On("GetByID", mock.Anything, int64(40)).Return(&domain.Service{ID: 40}, nil)
	addrs.On("GetByID", mock.Anything, int64(50)).Return(&domain.Address{ID: 50, UserID: 2}, nil)

	for _, rate := range []any{float64(0), float64(-5), "0"} {
		_, err := svc.CreateSitterService(context.Background(), CreateSitterServiceRequest{
			UserID: 2, ServiceID: 40, AddressID: 50, Rate: rate,
		})

		assert.ErrorIs(t, err, ErrInvalidRate)
	}
}

func TestService_GetSitterService_NotFound(t *testing.T) {
	svc, _, listings, _, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSitterService(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
