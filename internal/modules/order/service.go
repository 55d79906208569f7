package order

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

// Service implements the booking lifecycle: creation, status transitions,
// the two message channels and the two-sided review exchange. All
// validation happens before the single write of each operation, so a
// failed request leaves no partial state behind.
type Service struct {
	orders   OrderRepository
	users    UserGate
	listings ListingGate
	services ServiceGate
	pets     PetGate
	addrs    AddressGate
	events   EventPublisher
}

func NewService(
	orders OrderRepository,
	users UserGate,
	listings ListingGate,
	services ServiceGate,
	pets PetGate,
	addrs AddressGate,
	events EventPublisher,
) *Service {
	return &Service{
		orders:   orders,
		users:    users,
		listings: listings,
		services: services,
		pets:     pets,
		addrs:    addrs,
		events:   events,
	}
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	normalUser, err := s.users.GetByID(ctx, req.NormalUserID)
	if err != nil {
		return nil, refErr(err)
	}
	petsitterUser, err := s.users.GetByID(ctx, req.PetsitterUserID)
	if err != nil {
		return nil, refErr(err)
	}
	listing, err := s.listings.GetByID(ctx, req.ServiceModelID)
	if err != nil {
		return nil, refErr(err)
	}
	pet, err := s.pets.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, refErr(err)
	}
	addr, err := s.addrs.GetByID(ctx, req.UserAddressID)
	if err != nil {
		return nil, refErr(err)
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}

	startDT, err := parseStartDatetime(req.StartDatetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	// Role checks apply only when a profile row exists.
	normalProfile, err := s.users.GetProfile(ctx, normalUser.ID)
	if err != nil {
		return nil, err
	}
	if normalProfile != nil && normalProfile.Role != domain.RoleNormalUser {
		return nil, ErrNormalUserRole
	}
	petsitterProfile, err := s.users.GetProfile(ctx, petsitterUser.ID)
	if err != nil {
		return nil, err
	}
	if petsitterProfile != nil && petsitterProfile.Role != domain.RolePetsitter {
		return nil, ErrPetsitterRole
	}

	if pet.UserID != normalUser.ID {
		return nil, ErrPetOwnership
	}
	if addr.UserID != normalUser.ID {
		return nil, ErrAddressOwnership
	}

	o := &domain.Order{
		NormalUserID:    normalUser.ID,
		PetsitterUserID: petsitterUser.ID,
		ServiceModelID:  listing.ID,
		PetID:           &pet.ID,
		UserAddressID:   &addr.ID,
		Quantity:        quantity,
		FinalRate:       listing.Rate * float64(quantity),
		StartDatetime:   startDT,
		Status:          domain.OrderPending,
		MsgForUser:      domain.DefaultOrderMessage,
		MsgForPetsitter: domain.DefaultOrderMessage,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, o); err != nil {
		return nil, err
	}
	s.publish(o, EventCreated)
	return o, nil
}

// ListForUser returns the union of orders where the user is either party,
// newest first, fully hydrated.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := s.orders.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if err := s.Hydrate(ctx, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Approve sets status=approved with no precondition on the current state:
// approving an already-approved (or completed) order is a no-op rewrite.
func (s *Service) Approve(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.setStatus(ctx, orderID, domain.OrderApproved)
}

// Complete mirrors Approve for status=completed.
func (s *Service) Complete(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.setStatus(ctx, orderID, domain.OrderCompleted)
}

func (s *Service) setStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.Status = status
	if err := s.save(ctx, o); err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, o); err != nil {
		return nil, err
	}
	s.publish(o, EventStatusChanged)
	return o, nil
}

// MessageToPetsitter overwrites the customer-to-sitter channel.
func (s *Service) MessageToPetsitter(ctx context.Context, orderID int64, message string) (*domain.Order, error) {
	return s.setMessage(ctx, orderID, message, true)
}

// MessageToUser overwrites the sitter-to-customer channel.
func (s *Service) MessageToUser(ctx context.Context, orderID int64, message string) (*domain.Order, error) {
	return s.setMessage(ctx, orderID, message, false)
}

func (s *Service) setMessage(ctx context.Context, orderID int64, message string, forPetsitter bool) (*domain.Order, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if forPetsitter {
		o.MsgForPetsitter = message
	} else {
		o.MsgForUser = message
	}
	if err := s.save(ctx, o); err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, o); err != nil {
		return nil, err
	}
	s.publish(o, EventMessage)
	return o, nil
}

// AddReview resolves which side the acting user plays and writes the
// *other* party's rating fields: the customer rates the sitter and vice
// versa. Reviews replace any previous review; an omitted rating leaves the
// stored rating untouched while the text still updates.
func (s *Service) AddReview(ctx context.Context, orderID int64, req ReviewRequest) (*domain.Order, error) {
	rating, err := parseRating(req.Rating)
	if err != nil {
		return nil, err
	}

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch user.ID {
	case o.NormalUserID:
		o.RatingReviewForPetsitter = req.Review
		if rating != nil {
			o.RatingForPetsitter = rating
		}
	case o.PetsitterUserID:
		o.RatingReviewForUser = req.Review
		if rating != nil {
			o.RatingForUser = rating
		}
	default:
		return nil, ErrNotParticipant
	}

	if err := s.save(ctx, o); err != nil {
		return nil, err
	}

	if err := s.Hydrate(ctx, o); err != nil {
		return nil, err
	}
	s.publish(o, EventReview)
	return o, nil
}

func (s *Service) getOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// save recomputes final_rate from the listing's *current* rate before every
// persistence: the order never stores a rate independent of its source
// listing and quantity, and nothing is frozen at booking time.
func (s *Service) save(ctx context.Context, o *domain.Order) error {
	listing, err := s.listings.GetByID(ctx, o.ServiceModelID)
	if err == nil && o.Quantity > 0 {
		o.FinalRate = listing.Rate * float64(o.Quantity)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.orders.Save(ctx, o)
}

// Hydrate fills every nested entity of the order projection.
func (s *Service) Hydrate(ctx context.Context, o *domain.Order) error {
	var err error
	if o.NormalUser, err = s.userWithProfile(ctx, o.NormalUserID); err != nil {
		return err
	}
	if o.PetsitterUser, err = s.userWithProfile(ctx, o.PetsitterUserID); err != nil {
		return err
	}

	listing, err := s.listings.GetByID(ctx, o.ServiceModelID)
	if err != nil {
		return err
	}
	if listing.User, err = s.userWithProfile(ctx, listing.UserID); err != nil {
		return err
	}
	if listing.Service, err = s.services.GetByID(ctx, listing.ServiceID); err != nil {
		return err
	}
	if listing.Address, err = s.addrs.GetByID(ctx, listing.AddressID); err != nil {
		return err
	}
	o.ServiceModel = listing

	if o.PetID != nil {
		if o.Pet, err = s.pets.GetByID(ctx, *o.PetID); err != nil {
			return err
		}
	}
	if o.UserAddressID != nil {
		if o.UserAddress, err = s.addrs.GetByID(ctx, *o.UserAddressID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) userWithProfile(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.users.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Profile = p
	return u, nil
}

func (s *Service) publish(o *domain.Order, eventType string) {
	if s.events == nil {
		return
	}
	s.events.PublishOrderEvent(o.ID, OrderEvent{Type: eventType, Order: o})
}

func refErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidReference
	}
	return err
}

func parseQuantity(v any) (int, error) {
	if v == nil {
		return 1, nil
	}

	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, ErrQuantityNotNumeric
		}
		return checkPositive(int(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, ErrQuantityNotNumeric
		}
		return checkPositive(int(i))
	case string:
		if n == "" {
			return 1, nil
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, ErrQuantityNotNumeric
		}
		return checkPositive(i)
	default:
		return 0, ErrQuantityNotNumeric
	}
}

func checkPositive(q int) (int, error) {
	if q <= 0 {
		return 0, ErrQuantityNotPositive
	}
	return q, nil
}

func parseRating(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	var rating int
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return nil, ErrRatingNotNumeric
		}
		rating = int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, ErrRatingNotNumeric
		}
		rating = int(i)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return nil, ErrRatingNotNumeric
		}
		rating = i
	default:
		return nil, ErrRatingNotNumeric
	}

	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	return &rating, nil
}

// parseStartDatetime accepts ISO-8601 with a trailing Z normalized to the
// +00:00 offset, plus naive datetime and date-only forms (treated as UTC).
func parseStartDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	layouts := []string{
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04-07:00",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	naive := []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range naive {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDatetime
}
