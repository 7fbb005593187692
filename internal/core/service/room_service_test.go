package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kosapp/kos-api/internal/core/domain"
	"github.com/kosapp/kos-api/internal/core/ports"
)

var (
	adminPrincipal  = domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin}
	renterPrincipal = domain.Principal{UserID: "renter-1", Role: domain.RolePenyewa}
)

func newRoomService(rooms *stubRoomRepo, payments *stubPaymentRepo) *RoomService {
	return NewRoomService(rooms, payments, zerolog.Nop())
}

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func TestRoomCreate(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())

	room, err := svc.Create(context.Background(), ports.CreateRoomInput{
		Principal:   adminPrincipal,
		Number:      "C02",
		Type:        domain.RoomTypeSingle,
		MonthlyRate: 750000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.ID == "" {
		t.Error("created room has no id")
	}
	if room.Status != domain.RoomAvailable {
		t.Errorf("default status = %q, want available", room.Status)
	}
}

func TestRoomCreateDuplicateNumber(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())

	input := ports.CreateRoomInput{Principal: adminPrincipal, Number: "A01", Type: domain.RoomTypeSingle, MonthlyRate: 500000}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrDuplicateRoomNumber) {
		t.Fatalf("duplicate Create err = %v, want ErrDuplicateRoomNumber", err)
	}
}

func TestRoomCreateValidation(t *testing.T) {
	svc := newRoomService(newStubRoomRepo(), newStubPaymentRepo())

	_, err := svc.Create(context.Background(), ports.CreateRoomInput{Principal: adminPrincipal, Number: "A01", MonthlyRate: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero rate err = %v, want ErrValidation", err)
	}
	_, err = svc.Create(context.Background(), ports.CreateRoomInput{Principal: adminPrincipal, Number: "", MonthlyRate: 500000})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing number err = %v, want ErrValidation", err)
	}
	_, err = svc.Create(context.Background(), ports.CreateRoomInput{Principal: adminPrincipal, Number: "A01", MonthlyRate: 500000, Status: "demolished"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown status err = %v, want ErrValidation", err)
	}
}

func TestRoomCreateForbiddenForRenter(t *testing.T) {
	svc := newRoomService(newStubRoomRepo(), newStubPaymentRepo())

	_, err := svc.Create(context.Background(), ports.CreateRoomInput{Principal: renterPrincipal, Number: "A01", MonthlyRate: 500000})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestRoomUpdateStatusTransitions(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())
	room := rooms.add(&domain.Room{Number: "B01", Type: domain.RoomTypeSingle, MonthlyRate: 600000, Status: domain.RoomMaintenance})

	// maintenance -> occupied is not a legal edge.
	_, err := svc.Update(context.Background(), ports.UpdateRoomInput{
		Principal: adminPrincipal,
		ID:        room.ID,
		Status:    strPtr(string(domain.RoomOccupied)),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("maintenance -> occupied err = %v, want ErrInvalidTransition", err)
	}

	// maintenance -> available -> occupied works.
	if _, err := svc.Update(context.Background(), ports.UpdateRoomInput{
		Principal: adminPrincipal,
		ID:        room.ID,
		Status:    strPtr(string(domain.RoomAvailable)),
	}); err != nil {
		t.Fatalf("maintenance -> available: %v", err)
	}
	updated, err := svc.Update(context.Background(), ports.UpdateRoomInput{
		Principal: adminPrincipal,
		ID:        room.ID,
		Status:    strPtr(string(domain.RoomOccupied)),
	})
	if err != nil {
		t.Fatalf("available -> occupied: %v", err)
	}
	if updated.Status != domain.RoomOccupied {
		t.Errorf("status = %q, want occupied", updated.Status)
	}
}

func TestRoomUpdateSameStatusIsNoOp(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())
	room := rooms.add(&domain.Room{Number: "B02", Type: domain.RoomTypeDouble, MonthlyRate: 900000, Status: domain.RoomOccupied})

	updated, err := svc.Update(context.Background(), ports.UpdateRoomInput{
		Principal: adminPrincipal,
		ID:        room.ID,
		Status:    strPtr(string(domain.RoomOccupied)),
		Number:    strPtr("B02-renamed"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Number != "B02-renamed" {
		t.Errorf("number = %q, want B02-renamed", updated.Number)
	}
}

func TestRoomDeleteBlockedByPendingBill(t *testing.T) {
	rooms := newStubRoomRepo()
	payments := newStubPaymentRepo()
	svc := newRoomService(rooms, payments)
	svc.now = func() time.Time { return time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC) }

	room := rooms.add(&domain.Room{Number: "C02", Type: domain.RoomTypeSingle, MonthlyRate: 750000, Status: domain.RoomOccupied})
	payments.add(&domain.Payment{RoomID: room.ID, RenterID: "renter-1", Month: 11, Year: 2025, Amount: 750000, Status: domain.PaymentPending})

	err := svc.Delete(context.Background(), adminPrincipal, room.ID)
	if !errors.Is(err, domain.ErrRoomHasPendingBills) {
		t.Fatalf("Delete err = %v, want ErrRoomHasPendingBills", err)
	}
	if _, err := rooms.FindByID(context.Background(), room.ID); err != nil {
		t.Fatal("room must survive a blocked delete")
	}
}

func TestRoomDeleteIgnoresPastAndPaidBills(t *testing.T) {
	rooms := newStubRoomRepo()
	payments := newStubPaymentRepo()
	svc := newRoomService(rooms, payments)
	svc.now = func() time.Time { return time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC) }

	room := rooms.add(&domain.Room{Number: "C03", Type: domain.RoomTypeSingle, MonthlyRate: 750000, Status: domain.RoomAvailable})
	paidAt := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	payments.add(&domain.Payment{RoomID: room.ID, RenterID: "renter-1", Month: 11, Year: 2025, Amount: 750000, Status: domain.PaymentPaid, PaymentDate: &paidAt})
	payments.add(&domain.Payment{RoomID: room.ID, RenterID: "renter-1", Month: 9, Year: 2025, Amount: 750000, Status: domain.PaymentPending})

	if err := svc.Delete(context.Background(), adminPrincipal, room.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := rooms.FindByID(context.Background(), room.ID); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Errorf("FindByID after delete err = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomDeleteForbiddenForRenter(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())
	room := rooms.add(&domain.Room{Number: "D01", MonthlyRate: 500000, Status: domain.RoomAvailable})

	if err := svc.Delete(context.Background(), renterPrincipal, room.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestRoomListFiltersByStatus(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())
	rooms.add(&domain.Room{Number: "E01", Status: domain.RoomAvailable, MonthlyRate: 1})
	rooms.add(&domain.Room{Number: "E02", Status: domain.RoomOccupied, MonthlyRate: 1})

	got, err := svc.List(context.Background(), ports.ListRoomsInput{Principal: renterPrincipal, Status: "available"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Number != "E01" {
		t.Errorf("List(available) = %d rooms, want the single available room", len(got))
	}

	if _, err := svc.List(context.Background(), ports.ListRoomsInput{Principal: renterPrincipal, Status: "demolished"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown status err = %v, want ErrValidation", err)
	}
}

func TestRoomStatistics(t *testing.T) {
	rooms := newStubRoomRepo()
	svc := newRoomService(rooms, newStubPaymentRepo())
	rooms.add(&domain.Room{Number: "F01", Status: domain.RoomAvailable, MonthlyRate: 500000})
	rooms.add(&domain.Room{Number: "F02", Status: domain.RoomOccupied, MonthlyRate: 750000})
	rooms.add(&domain.Room{Number: "F03", Status: domain.RoomOccupied, MonthlyRate: 900000})
	rooms.add(&domain.Room{Number: "F04", Status: domain.RoomMaintenance, MonthlyRate: 600000})

	stats, err := svc.Statistics(context.Background(), renterPrincipal)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalRooms != 4 || stats.Available != 1 || stats.Occupied != 2 || stats.Maintenance != 1 {
		t.Errorf("stats = %+v, want totals 4/1/2/1", stats)
	}
	if stats.PotentialRevenue != 1650000 {
		t.Errorf("PotentialRevenue = %d, want 1650000", stats.PotentialRevenue)
	}
}
