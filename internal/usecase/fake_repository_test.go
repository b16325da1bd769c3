package usecase

import (
	"context"
	"io"
	"sort"

	"maareeye-hospital/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// fakeStore is an in-memory Repository used by the usecase tests.
type fakeStore[T any] struct {
	rows      map[int64]T
	nextID    int64
	getID     func(*T) int64
	setID     func(*T, int64)
	err       error
	createErr error
	updateErr error
	// vanish makes Update behave as if the row was deleted after it was read.
	vanish bool
	// beforeWrite runs ahead of Create, standing in for a concurrent request.
	beforeWrite func()
	writes      int
}

func newFakeStore[T any](getID func(*T) int64, setID func(*T, int64)) *fakeStore[T] {
	return &fakeStore[T]{rows: map[int64]T{}, getID: getID, setID: setID}
}

func (s *fakeStore[T]) List(ctx context.Context) ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, s.rows[id])
	}
	return rows, nil
}

func (s *fakeStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	if s.err != nil {
		return nil, s.err
	}
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (s *fakeStore[T]) Create(ctx context.Context, row *T) error {
	if s.beforeWrite != nil {
		s.beforeWrite()
	}
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	s.setID(row, s.nextID)
	s.rows[s.nextID] = *row
	s.writes++
	return nil
}

func (s *fakeStore[T]) Update(ctx context.Context, row *T) (int64, error) {
	if s.updateErr != nil {
		return 0, s.updateErr
	}
	id := s.getID(row)
	if _, ok := s.rows[id]; !ok || s.vanish {
		return 0, nil
	}
	s.rows[id] = *row
	s.writes++
	return 1, nil
}

func (s *fakeStore[T]) Delete(ctx context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	s.writes++
	return 1, nil
}

func (s *fakeStore[T]) Count(ctx context.Context) (int64, error) {
	return int64(len(s.rows)), s.err
}

func newFakeHospitals() *fakeStore[entity.Hospital] {
	return newFakeStore(
		func(h *entity.Hospital) int64 { return h.ID },
		func(h *entity.Hospital, id int64) { h.ID = id },
	)
}

func newFakeDoctors() *fakeStore[entity.Doctor] {
	return newFakeStore(
		func(d *entity.Doctor) int64 { return d.ID },
		func(d *entity.Doctor, id int64) { d.ID = id },
	)
}

func newFakePatients() *fakeStore[entity.Patient] {
	return newFakeStore(
		func(p *entity.Patient) int64 { return p.ID },
		func(p *entity.Patient, id int64) { p.ID = id },
	)
}

func newFakeAppointments() *fakeStore[entity.Appointment] {
	return newFakeStore(
		func(a *entity.Appointment) int64 { return a.ID },
		func(a *entity.Appointment, id int64) { a.ID = id },
	)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ptr[T any](v T) *T {
	return &v
}
