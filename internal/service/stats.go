package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// Stats gathers the admin dashboard counters. The four counts are independent
// and run concurrently; any failure fails the whole call, partial dashboards
// mislead more than they help.
func (s *Service) Stats(ctx context.Context, session entity.Session) (entity.Stats, error) {
	if err := s.checkConfigured(); err != nil {
		return entity.Stats{}, err
	}

	profile := s.ResolveProfile(ctx, session)
	if profile.Role != entity.RoleAdmin {
		return entity.Stats{}, entity.ErrForbidden
	}

	var (
		stats entity.Stats
		mu    sync.Mutex
		wg    sync.WaitGroup
		errs  []error
	)

	count := func(name string, dst *int, fn func(context.Context) (int, error)) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			n, err := fn(ctx)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, fmt.Errorf("count %s: %w", name, err))
				return
			}

			*dst = n
		}()
	}

	count("students", &stats.TotalStudents, s.students.CountStudents)
	count("staff", &stats.TotalStaff, s.officers.CountOfficers)
	count("departments", &stats.TotalDepartments, s.departments.CountDepartments)
	count("pending clearances", &stats.PendingClearances, func(ctx context.Context) (int, error) {
		return s.records.CountByStatus(ctx, entity.StatusPending)
	})

	wg.Wait()

	if len(errs) > 0 {
		return entity.Stats{}, errs[0]
	}

	return stats, nil
}

// Departments lists the active departments for the sign-in form.
func (s *Service) Departments(ctx context.Context) ([]entity.Department, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	return s.departments.ActiveDepartments(ctx)
}
