//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/usecase/queries"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work. Fakes implement the same repository error kinds as
// the real stores so the command-layer mapping is exercised end to end.

type enrollmentKey struct {
	userID   uuid.UUID
	courseID uuid.UUID
}

type fakeNotification struct {
	UserID  uuid.UUID
	Message string
	IsRead  bool
}

type fakeState struct {
	courses       map[uuid.UUID]shared.CourseSnapshot
	cart          map[uuid.UUID][]shared.CartLine
	promotions    map[string]shared.PromotionSnapshot
	orders        map[uuid.UUID]*shared.OrderSnapshot
	enrollments   map[enrollmentKey]bool
	notifications []fakeNotification
}

func newFakeState() *fakeState {
	return &fakeState{
		courses:     make(map[uuid.UUID]shared.CourseSnapshot),
		cart:        make(map[uuid.UUID][]shared.CartLine),
		promotions:  make(map[string]shared.PromotionSnapshot),
		orders:      make(map[uuid.UUID]*shared.OrderSnapshot),
		enrollments: make(map[enrollmentKey]bool),
	}
}

func (s *fakeState) addCourse(title string, price int64, published bool) uuid.UUID {
	id := uuid.New()
	s.courses[id] = shared.CourseSnapshot{ID: id, Title: title, Price: price, Published: published}
	return id
}

func (s *fakeState) addToCart(userID, courseID uuid.UUID) {
	course := s.courses[courseID]
	s.cart[userID] = append(s.cart[userID], shared.CartLine{
		CourseID: courseID,
		Title:    course.Title,
		Price:    course.Price,
	})
}

func (s *fakeState) addPromotion(snap shared.PromotionSnapshot) {
	s.promotions[snap.Code] = snap
}

type fakeUoW struct {
	state *fakeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Orders() shared.OrderRepository               { return &fakeOrderRepo{state: t.state} }
func (t *fakeTx) Cart() shared.CartRepository                  { return &fakeCartRepo{state: t.state} }
func (t *fakeTx) Enrollments() shared.EnrollmentRepository     { return &fakeEnrollmentRepo{state: t.state} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) CourseByID(_ context.Context, id uuid.UUID) (*shared.CourseSnapshot, error) {
	snap, ok := r.state.courses[id]
	if !ok {
		return nil, infra.WrapRepoErr("course not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) CartLinesByUser(_ context.Context, userID uuid.UUID) ([]shared.CartLine, error) {
	return r.state.cart[userID], nil
}

func (r *fakeReads) PromotionByCode(_ context.Context, code string) (*shared.PromotionSnapshot, error) {
	snap, ok := r.state.promotions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, infra.WrapRepoErr("promotion not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	snap, ok := r.state.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *fakeReads) EnrollmentExists(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	return r.state.enrollments[enrollmentKey{userID: studentID, courseID: courseID}], nil
}

type fakeOrderRepo struct {
	state *fakeState
}

func (f *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	lines := make([]shared.OrderLineSnapshot, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, shared.OrderLineSnapshot{CourseID: l.CourseID(), Price: l.Price()})
	}
	f.state.orders[o.ID()] = &shared.OrderSnapshot{
		ID:               o.ID(),
		UserID:           o.UserID(),
		Status:           o.Status(),
		TotalAmount:      o.TotalAmount(),
		DiscountedAmount: o.DiscountedAmount(),
		PromotionID:      o.PromotionID(),
		Lines:            lines,
		CreatedAt:        o.CreatedAt(),
	}
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status order.Status) error {
	snap, ok := f.state.orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
	}
	if snap.Status != order.StatusPending {
		return infra.WrapRepoErr("order is not pending", errors.New("conflict"), infra.KindConflict)
	}
	snap.Status = status
	return nil
}

type fakeCartRepo struct {
	state *fakeState
}

func (f *fakeCartRepo) Add(_ context.Context, _ db.DBTX, userID, courseID uuid.UUID) error {
	for _, line := range f.state.cart[userID] {
		if line.CourseID == courseID {
			return infra.WrapRepoErr("duplicate cart item", errors.New("duplicate"), infra.KindDuplicateKey)
		}
	}
	f.state.addToCart(userID, courseID)
	return nil
}

func (f *fakeCartRepo) Remove(_ context.Context, _ db.DBTX, userID, courseID uuid.UUID) error {
	lines := f.state.cart[userID]
	for i, line := range lines {
		if line.CourseID == courseID {
			f.state.cart[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("cart item not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeCartRepo) DeleteLines(_ context.Context, _ db.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(courseIDs))
	for _, id := range courseIDs {
		drop[id] = true
	}
	var kept []shared.CartLine
	for _, line := range f.state.cart[userID] {
		if !drop[line.CourseID] {
			kept = append(kept, line)
		}
	}
	f.state.cart[userID] = kept
	return nil
}

type fakeEnrollmentRepo struct {
	state *fakeState
}

func (f *fakeEnrollmentRepo) Upsert(_ context.Context, _ db.DBTX, studentID, courseID uuid.UUID) (bool, error) {
	key := enrollmentKey{userID: studentID, courseID: courseID}
	if f.state.enrollments[key] {
		return false, nil
	}
	f.state.enrollments[key] = true
	return true, nil
}

type fakeNotificationRepo struct {
	state *fakeState
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, message string) error {
	f.state.notifications = append(f.state.notifications, fakeNotification{UserID: userID, Message: message})
	return nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ db.DBTX, userID, notificationID uuid.UUID) error {
	return infra.WrapRepoErr("notification not found", errors.New("no rows"), infra.KindNotFound)
}

// fakeOrderQueries serves the read-after-write at the end of checkout.
type fakeOrderQueries struct {
	state *fakeState
}

func (q *fakeOrderQueries) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		return nil, queries.ErrNotOrderOwner
	}
	return view, nil
}

func (q *fakeOrderQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	snap, ok := q.state.orders[id]
	if !ok {
		return nil, queries.ErrOrderNotFound
	}

	view := &queries.OrderView{
		ID:               snap.ID,
		UserID:           snap.UserID,
		Status:           snap.Status.String(),
		TotalAmount:      snap.TotalAmount,
		DiscountedAmount: snap.DiscountedAmount,
		CreatedAt:        snap.CreatedAt,
	}
	for _, line := range snap.Lines {
		view.Lines = append(view.Lines, queries.OrderLineView{
			CourseID: line.CourseID,
			Title:    q.state.courses[line.CourseID].Title,
			Price:    line.Price,
		})
	}
	if snap.PromotionID != nil {
		for _, promo := range q.state.promotions {
			if promo.ID == *snap.PromotionID {
				code := promo.Code
				view.PromotionCode = &code
			}
		}
	}
	return view, nil
}

func (q *fakeOrderQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.OrderListItem, error) {
	return nil, nil
}

func (q *fakeOrderQueries) ListAll(_ context.Context, _ int32) ([]*queries.OrderListItem, error) {
	return nil, nil
}
