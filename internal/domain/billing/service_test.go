package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/platform/apperror"
)

type mockRepo struct {
	bills map[uuid.UUID]*Bill
	fail  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{bills: map[uuid.UUID]*Bill{}}
}

func (m *mockRepo) Insert(_ context.Context, b *Bill) error {
	if m.fail != nil {
		return m.fail
	}
	b.ID = uuid.New()
	b.Status = StatusUnpaid
	b.BillingDate = time.Now()
	m.bills[b.ID] = b
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Bill, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	return m.bills[id], nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Bill, error) {
	var items []*Bill
	for _, b := range m.bills {
		if b.PatientID == patientID {
			items = append(items, b)
		}
	}
	return items, nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*BillWithPatient, error) {
	var items []*BillWithPatient
	for _, b := range m.bills {
		items = append(items, &BillWithPatient{Bill: *b})
	}
	return items, nil
}

func (m *mockRepo) MarkPaid(_ context.Context, id uuid.UUID, method string) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	b, ok := m.bills[id]
	if !ok || b.Status != StatusUnpaid {
		return false, nil
	}
	b.Status = StatusPaid
	b.PaymentMethod = &method
	return true, nil
}

type staticChecker struct {
	known map[uuid.UUID]bool
}

func (s staticChecker) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return s.known[id], nil
}

type recordedAction struct {
	actionType string
	subject    string
}

type spyRecorder struct {
	actions []recordedAction
}

func (s *spyRecorder) Record(_ context.Context, _, _, actionType, subject, _ string) {
	s.actions = append(s.actions, recordedAction{actionType, subject})
}

func TestCreateRejectsUnknownPatient(t *testing.T) {
	svc := NewService(newMockRepo(), staticChecker{known: map[uuid.UUID]bool{}}, &spyRecorder{})

	_, err := svc.Create(context.Background(), CreateInput{PatientID: uuid.New(), Amount: 250})
	if apperror.KindOf(err) != apperror.Reference {
		t.Fatalf("kind = %v, want Reference", apperror.KindOf(err))
	}
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	pid := uuid.New()
	svc := NewService(newMockRepo(), staticChecker{known: map[uuid.UUID]bool{pid: true}}, &spyRecorder{})

	_, err := svc.Create(context.Background(), CreateInput{PatientID: pid, Amount: 0})
	if apperror.KindOf(err) != apperror.Validation {
		t.Fatalf("kind = %v, want Validation", apperror.KindOf(err))
	}
}

func TestSettleOneWayTransition(t *testing.T) {
	repo := newMockRepo()
	pid := uuid.New()
	rec := &spyRecorder{}
	svc := NewService(repo, staticChecker{known: map[uuid.UUID]bool{pid: true}}, rec)

	b, err := svc.Create(context.Background(), CreateInput{PatientID: pid, Amount: 500})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Settle(context.Background(), b.ID, PayInput{Method: "Cash"}); err != nil {
		t.Fatalf("first Settle: %v", err)
	}
	err = svc.Settle(context.Background(), b.ID, PayInput{Method: "Card"})
	if apperror.KindOf(err) != apperror.InvalidStateTransition {
		t.Fatalf("second Settle kind = %v, want InvalidStateTransition", apperror.KindOf(err))
	}

	got := repo.bills[b.ID]
	if got.Status != StatusPaid {
		t.Errorf("status = %q, want Paid", got.Status)
	}
	if got.PaymentMethod == nil || *got.PaymentMethod != "Cash" {
		t.Errorf("first method not retained: %v", got.PaymentMethod)
	}
	if len(rec.actions) != 1 || rec.actions[0].actionType != audit.ActionPayment {
		t.Fatalf("expected exactly one Payment audit entry, got %+v", rec.actions)
	}
}

func TestSettleUnknownBill(t *testing.T) {
	rec := &spyRecorder{}
	svc := NewService(newMockRepo(), staticChecker{}, rec)

	err := svc.Settle(context.Background(), uuid.New(), PayInput{Method: "Cash"})
	if apperror.KindOf(err) != apperror.NotFound {
		t.Fatalf("kind = %v, want NotFound", apperror.KindOf(err))
	}
	if len(rec.actions) != 0 {
		t.Errorf("failed settlement must not be audited")
	}
}

func TestSettleRequiresMethod(t *testing.T) {
	svc := NewService(newMockRepo(), staticChecker{}, &spyRecorder{})

	err := svc.Settle(context.Background(), uuid.New(), PayInput{})
	if apperror.KindOf(err) != apperror.Validation {
		t.Fatalf("kind = %v, want Validation", apperror.KindOf(err))
	}
}
