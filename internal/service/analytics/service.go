// Package analytics считает загрузку комнат и активность отделов
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	DefaultDays = 30
	MaxDays     = 365

	// UnknownDepartment отдел владельца не указан
	UnknownDepartment = "Not specified"
)

type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	dayLength    time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService dayLength - длительность рабочего дня сетки расписания
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, dayLength time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		dayLength:    dayLength,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Report строит отчет по подтверждённым бронированиям, начавшимся за последние days дней
func (s *Service) Report(ctx context.Context, days int) (*Report, error) {
	if days < 1 || days > MaxDays {
		return nil, ErrInvalidPeriod
	}

	to := s.timeProvider.Now()
	from := to.AddDate(0, 0, -days)
	status := domain.StatusConfirmed

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{From: &from, Status: &status})
	if err != nil {
		s.logger.Error("Report: bookings repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - bookings: %v", ErrInternal, err)
	}

	rooms, err := s.roomRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("Report: rooms repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - rooms: %v", ErrInternal, err)
	}

	report := Build(bookings, rooms, days, s.dayLength)
	report.From = from
	report.To = to

	s.logger.Info("Report: %d bookings over %d days", report.TotalBookings, days)
	return report, nil
}

// Build агрегирует бронирования по комнатам и отделам
// Комнаты сортируются по убыванию загрузки, отделы - по убыванию числа бронирований
func Build(bookings []*domain.Booking, rooms []*domain.Room, days int, dayLength time.Duration) *Report {
	available := float64(days) * dayLength.Hours()

	usage := make(map[uuid.UUID]*RoomUsage, len(rooms))
	order := make([]uuid.UUID, 0, len(rooms))
	for _, r := range rooms {
		usage[r.ID] = &RoomUsage{RoomID: r.ID, RoomName: r.Name, AvailableHours: round(available)}
		order = append(order, r.ID)
	}

	departments := make(map[string]int)
	report := &Report{Days: days}

	for _, b := range bookings {
		hours := b.Interval().Duration().Hours()
		report.TotalBookings++
		report.BookedHours += hours

		u, ok := usage[b.RoomID]
		if !ok {
			name := "Unknown"
			if b.Room != nil {
				name = b.Room.Name
			}
			u = &RoomUsage{RoomID: b.RoomID, RoomName: name, AvailableHours: round(available)}
			usage[b.RoomID] = u
			order = append(order, b.RoomID)
		}
		u.Bookings++
		u.BookedHours += hours

		dept := UnknownDepartment
		if b.User != nil && strings.TrimSpace(b.User.Department) != "" {
			dept = b.User.Department
		}
		departments[dept]++
	}

	report.BookedHours = round(report.BookedHours)
	report.Rooms = make([]RoomUsage, 0, len(order))
	for _, id := range order {
		u := usage[id]
		if available > 0 {
			u.OccupancyPercent = round(u.BookedHours / available * 100)
		}
		u.BookedHours = round(u.BookedHours)
		report.Rooms = append(report.Rooms, *u)
	}
	sort.SliceStable(report.Rooms, func(i, j int) bool {
		return report.Rooms[i].OccupancyPercent > report.Rooms[j].OccupancyPercent
	})

	report.Departments = make([]DepartmentUsage, 0, len(departments))
	for dept, count := range departments {
		report.Departments = append(report.Departments, DepartmentUsage{Department: dept, Bookings: count})
	}
	sort.Slice(report.Departments, func(i, j int) bool {
		if report.Departments[i].Bookings != report.Departments[j].Bookings {
			return report.Departments[i].Bookings > report.Departments[j].Bookings
		}
		return report.Departments[i].Department < report.Departments[j].Department
	})

	return report
}

// round до двух знаков
func round(v float64) float64 {
	return math.Round(v*100) / 100
}
