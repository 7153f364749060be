package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

func newReportsService(s *stubStore) *ReportsService {
	return NewReportsService(s, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// SessionBalance
// ---------------------------------------------------------------------------

func TestSessionBalance_Unpaid(t *testing.T) {
	store := newStubStore()
	_, session, _ := seedClientSessionPayment(store)
	svc := newReportsService(store)

	balance, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	if got := balance.Price.StringFixed(2); got != "120.00" {
		t.Errorf("Price = %s, want 120.00", got)
	}
	if got := balance.PaidAmount.StringFixed(2); got != "0.00" {
		t.Errorf("PaidAmount = %s, want 0.00", got)
	}
	if got := balance.RemainingAmount.StringFixed(2); got != "120.00" {
		t.Errorf("RemainingAmount = %s, want 120.00", got)
	}
	if balance.IsPaid {
		t.Error("IsPaid = true, want false")
	}
}

func TestSessionBalance_PartiallyPaid(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("70")})
	svc := newReportsService(store)

	balance, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	if got := balance.RemainingAmount.StringFixed(2); got != "50.00" {
		t.Errorf("RemainingAmount = %s, want 50.00", got)
	}
	if balance.IsPaid {
		t.Error("IsPaid = true, want false")
	}
}

func TestSessionBalance_ExactlyPaid(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("120")})
	svc := newReportsService(store)

	balance, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	if got := balance.RemainingAmount.StringFixed(2); got != "0.00" {
		t.Errorf("RemainingAmount = %s, want 0.00", got)
	}
	if !balance.IsPaid {
		t.Error("IsPaid = false, want true")
	}
}

func TestSessionBalance_OverpaidGoesNegative(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("150")})
	svc := newReportsService(store)

	balance, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	if got := balance.RemainingAmount.StringFixed(2); got != "-30.00" {
		t.Errorf("RemainingAmount = %s, want -30.00 (not clamped)", got)
	}
	if !balance.IsPaid {
		t.Error("IsPaid = false, want true")
	}
}

func TestSessionBalance_SessionNotFound(t *testing.T) {
	store := newStubStore()
	svc := newReportsService(store)

	_, err := svc.SessionBalance(context.Background(), 42)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// ClientBalance
// ---------------------------------------------------------------------------

func TestClientBalance_GrossPaymentsVsSessionPrices(t *testing.T) {
	store := newStubStore()
	client, session, _ := seedClientSessionPayment(store)
	svc := newReportsService(store)

	// Payment of 200 received but nothing allocated: the headline balance is
	// payment-based (+80) while the session split still reports it unpaid.
	balance, err := svc.ClientBalance(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("ClientBalance: %v", err)
	}
	if balance.ClientFullName != "Anna Kovacs" {
		t.Errorf("ClientFullName = %q", balance.ClientFullName)
	}
	if got := balance.TotalSessionsPrice.StringFixed(2); got != "120.00" {
		t.Errorf("TotalSessionsPrice = %s, want 120.00", got)
	}
	if got := balance.TotalPaidAmount.StringFixed(2); got != "200.00" {
		t.Errorf("TotalPaidAmount = %s, want 200.00", got)
	}
	if got := balance.Balance.StringFixed(2); got != "80.00" {
		t.Errorf("Balance = %s, want 80.00", got)
	}
	if balance.PaidSessionsCount != 0 || balance.UnpaidSessionsCount != 1 {
		t.Errorf("paid/unpaid = %d/%d, want 0/1", balance.PaidSessionsCount, balance.UnpaidSessionsCount)
	}
	_ = session
}

func TestClientBalance_PaidSplitFollowsAllocations(t *testing.T) {
	store := newStubStore()
	client, s1, payment := seedClientSessionPayment(store)
	s2 := store.addSession(domain.Session{
		Date: date(2026, time.April, 1), StartTime: "09:00", Duration: dec("2"),
		ClientID: client.ID, Format: domain.FormatOnline, HourlyRate: dec("100"),
	})
	store.addAllocation(domain.Allocation{SessionID: s1.ID, PaymentID: payment.ID, Amount: dec("120")})
	svc := newReportsService(store)

	balance, err := svc.ClientBalance(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("ClientBalance: %v", err)
	}
	if balance.TotalSessionsCount != 2 {
		t.Errorf("TotalSessionsCount = %d, want 2", balance.TotalSessionsCount)
	}
	if balance.PaidSessionsCount != 1 || balance.UnpaidSessionsCount != 1 {
		t.Errorf("paid/unpaid = %d/%d, want 1/1", balance.PaidSessionsCount, balance.UnpaidSessionsCount)
	}
	// 200 paid against 120 + 200 of session prices.
	if got := balance.Balance.StringFixed(2); got != "-120.00" {
		t.Errorf("Balance = %s, want -120.00", got)
	}
	_ = s2
}

func TestClientBalance_OtherClientsExcluded(t *testing.T) {
	store := newStubStore()
	client, _, _ := seedClientSessionPayment(store)
	other := store.addClient(domain.Client{FirstName: "Bela", LastName: "Nagy", HourlyRate: dec("80")})
	store.addSession(domain.Session{
		Date: date(2026, time.March, 5), StartTime: "08:00", Duration: dec("1"),
		ClientID: other.ID, Format: domain.FormatOnline, HourlyRate: dec("80"),
	})
	store.addPayment(domain.Payment{
		Date: date(2026, time.March, 6), ClientID: other.ID, Amount: dec("500"), Method: domain.MethodCash,
	})
	svc := newReportsService(store)

	balance, err := svc.ClientBalance(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("ClientBalance: %v", err)
	}
	if balance.TotalSessionsCount != 1 {
		t.Errorf("TotalSessionsCount = %d, want 1", balance.TotalSessionsCount)
	}
	if got := balance.TotalPaidAmount.StringFixed(2); got != "200.00" {
		t.Errorf("TotalPaidAmount = %s, want 200.00", got)
	}
}

func TestClientBalance_ClientNotFound(t *testing.T) {
	store := newStubStore()
	svc := newReportsService(store)

	_, err := svc.ClientBalance(context.Background(), 42)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// IncomeBySessions
// ---------------------------------------------------------------------------

func TestIncomeBySessions_SplitsPaidAndUnpaid(t *testing.T) {
	store := newStubStore()
	client, s1, payment := seedClientSessionPayment(store)
	s2 := store.addSession(domain.Session{
		Date: date(2026, time.March, 20), StartTime: "16:00", Duration: dec("1.5"),
		ClientID: client.ID, Format: domain.FormatOnline, HourlyRate: dec("100"),
	})
	store.addAllocation(domain.Allocation{SessionID: s1.ID, PaymentID: payment.ID, Amount: dec("120")})
	svc := newReportsService(store)

	report, err := svc.IncomeBySessions(context.Background(), date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("IncomeBySessions: %v", err)
	}
	if report.TotalSessionsCount != 2 {
		t.Errorf("TotalSessionsCount = %d, want 2", report.TotalSessionsCount)
	}
	if got := report.TotalIncome.StringFixed(2); got != "270.00" {
		t.Errorf("TotalIncome = %s, want 270.00", got)
	}
	if got := report.PaidIncome.StringFixed(2); got != "120.00" {
		t.Errorf("PaidIncome = %s, want 120.00", got)
	}
	if got := report.UnpaidIncome.StringFixed(2); got != "150.00" {
		t.Errorf("UnpaidIncome = %s, want 150.00", got)
	}
	_ = s2
}

func TestIncomeBySessions_PeriodBoundsInclusive(t *testing.T) {
	store := newStubStore()
	client := store.addClient(domain.Client{FirstName: "Anna", LastName: "Kovacs", HourlyRate: dec("100")})
	for _, day := range []int{1, 15, 31} {
		store.addSession(domain.Session{
			Date: date(2026, time.March, day), StartTime: "10:00", Duration: dec("1"),
			ClientID: client.ID, Format: domain.FormatOnline, HourlyRate: dec("100"),
		})
	}
	store.addSession(domain.Session{
		Date: date(2026, time.April, 1), StartTime: "10:00", Duration: dec("1"),
		ClientID: client.ID, Format: domain.FormatOnline, HourlyRate: dec("100"),
	})
	svc := newReportsService(store)

	report, err := svc.IncomeBySessions(context.Background(), date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("IncomeBySessions: %v", err)
	}
	if report.TotalSessionsCount != 3 {
		t.Errorf("TotalSessionsCount = %d, want 3 (both bounds inclusive)", report.TotalSessionsCount)
	}
}

func TestIncomeBySessions_OverallocationUncapped(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	// 150 allocated against a 120.00 session.
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("150")})
	svc := newReportsService(store)

	report, err := svc.IncomeBySessions(context.Background(), date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("IncomeBySessions: %v", err)
	}
	if got := report.PaidIncome.StringFixed(2); got != "150.00" {
		t.Errorf("PaidIncome = %s, want 150.00 (uncapped)", got)
	}
	if got := report.UnpaidIncome.StringFixed(2); got != "-30.00" {
		t.Errorf("UnpaidIncome = %s, want -30.00", got)
	}
}

func TestIncomeBySessions_EmptyPeriod(t *testing.T) {
	store := newStubStore()
	seedClientSessionPayment(store)
	svc := newReportsService(store)

	report, err := svc.IncomeBySessions(context.Background(), date(2027, time.January, 1), date(2027, time.January, 31))
	if err != nil {
		t.Fatalf("IncomeBySessions: %v", err)
	}
	if report.TotalSessionsCount != 0 {
		t.Errorf("TotalSessionsCount = %d, want 0", report.TotalSessionsCount)
	}
	if got := report.TotalIncome.StringFixed(2); got != "0.00" {
		t.Errorf("TotalIncome = %s, want 0.00", got)
	}
}

// ---------------------------------------------------------------------------
// IncomeByPayments
// ---------------------------------------------------------------------------

func TestIncomeByPayments_SumsByPaymentDate(t *testing.T) {
	store := newStubStore()
	client, _, _ := seedClientSessionPayment(store)
	store.addPayment(domain.Payment{
		Date: date(2026, time.March, 31), ClientID: client.ID, Amount: dec("99.50"), Method: domain.MethodCash,
	})
	store.addPayment(domain.Payment{
		Date: date(2026, time.April, 1), ClientID: client.ID, Amount: dec("1000"), Method: domain.MethodRevolut,
	})
	svc := newReportsService(store)

	report, err := svc.IncomeByPayments(context.Background(), date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("IncomeByPayments: %v", err)
	}
	if report.TotalPaymentsCount != 2 {
		t.Errorf("TotalPaymentsCount = %d, want 2", report.TotalPaymentsCount)
	}
	if got := report.TotalIncome.StringFixed(2); got != "299.50" {
		t.Errorf("TotalIncome = %s, want 299.50", got)
	}
}

func TestIncomeByPayments_IgnoresAllocationStatus(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("50")})
	svc := newReportsService(store)

	// Cash basis: the partially allocated payment still counts in full.
	report, err := svc.IncomeByPayments(context.Background(), date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("IncomeByPayments: %v", err)
	}
	if got := report.TotalIncome.StringFixed(2); got != "200.00" {
		t.Errorf("TotalIncome = %s, want 200.00", got)
	}
}

func TestReports_ReadsAreIdempotent(t *testing.T) {
	store := newStubStore()
	_, session, payment := seedClientSessionPayment(store)
	store.addAllocation(domain.Allocation{SessionID: session.ID, PaymentID: payment.ID, Amount: dec("70")})
	svc := newReportsService(store)

	first, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	second, err := svc.SessionBalance(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("SessionBalance: %v", err)
	}
	if !first.RemainingAmount.Equal(second.RemainingAmount) || first.IsPaid != second.IsPaid {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}
}
