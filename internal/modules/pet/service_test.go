package pet

import (
	"context"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, p *domain.Pet) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 70
	}
	return args.Error(0)
}

func (m *MockPetRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
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

func createReq() CreatePetRequest {
	return CreatePetRequest{
		UserID: 1,
		Name:   "Bruno",
		Pet:    "dog",
		Breed:  "Labrador",
		Age:    float64(3),
	}
}

func TestService_Create_Success(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetProfile", mock.Anything, int64(1)).Return(&domain.Profile{
		UserID: 1, Role: domain.RoleNormalUser,
	}, nil)
	pets.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), createReq())

	assert.NoError(t, err)
	assert.Equal(t, int64(70), p.ID)
	assert.Equal(t, domain.PetDog, p.Type)
	assert.NotNil(t, p.Age)
	assert.Equal(t, 3, *p.Age)
	assert.NotNil(t, p.User)
}

func TestService_Create_AgeAsString(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetProfile", mock.Anything, int64(1)).Return(nil, nil)
	pets.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := createReq()
	req.Age = "4"

	p, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 4, *p.Age)
}

func TestService_Create_UnknownUser(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	req := createReq()
	req.UserID = 404

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidReference)
	pets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidPetType(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

	req := createReq()
	req.Pet = "dragon"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidPetType)
}

func TestService_Create_PetsitterCannotOwnPets(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	users.On("GetProfile", mock.Anything, int64(2)).Return(&domain.Profile{
		UserID: 2, Role: domain.RolePetsitter,
	}, nil)

	req := createReq()
	req.UserID = 2

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotNormalUser)
}

func TestService_Create_NegativeAge(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetProfile", mock.Anything, int64(1)).Return(nil, nil)

	req := createReq()
	req.Age = float64(-1)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrAgeNegative)
}

func TestService_Create_AgeNotNumeric(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetProfile", mock.Anything, int64(1)).Return(nil, nil)

	req := createReq()
	req.Age = "young"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrAgeNotNumeric)
}

func TestService_ListForUser_AttachesOwner(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	pets.On("ListByUser", mock.Anything, int64(1)).Return([]domain.Pet{
		{ID: 70, UserID: 1, Name: "Bruno"},
		{ID: 71, UserID: 1, Name: "Whiskers"},
	}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "priya"}, nil)

	list, err := svc.ListForUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NotNil(t, list[0].User)
	assert.Equal(t, "priya", list[1].User.Username)
}

func TestService_ListForUser_Empty(t *testing.T) {
	pets := new(MockPetRepository)
	users := new(MockUserGate)
	svc := NewService(pets, users)

	pets.On("ListByUser", mock.Anything, int64(9)).Return([]domain.Pet{}, nil)

	list, err := svc.ListForUser(context.Background(), 9)

	assert.NoError(t, err)
	assert.Empty(t, list)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
