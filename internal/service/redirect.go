package service

import (
	"context"
	"strings"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// Navigate decides where a signed-in client belongs, given the path it is
// currently on.
//
// A resolved role redirects to its home area unless the client is already
// inside it; the prefix check is the anti-loop guard, without it every page
// load inside the area would bounce back to its root. When no role resolves,
// each session gets exactly one automatic re-resolution; while that retry has
// just been spent, the last-login-type hint may hand out a provisional
// destination. A session that stays roleless after the retry is orphaned and
// is forcibly signed out.
func (s *Service) Navigate(ctx context.Context, token, currentPath string) (entity.Navigation, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return entity.Navigation{}, err
	}

	profile := s.ResolveProfile(ctx, session)
	if !profile.None() {
		return navigationFor(profile, currentPath), nil
	}

	firstMiss := s.retries.attempt(session.Token)
	if firstMiss {
		profile = s.ResolveProfile(ctx, session)
		if !profile.None() {
			return navigationFor(profile, currentPath), nil
		}

		if nav, ok := s.hintNavigation(ctx, session); ok {
			return nav, nil
		}
	}

	s.revokeSession(ctx, session)

	return entity.Navigation{SignedOut: true, Redirect: "/"}, nil
}

func navigationFor(profile entity.Profile, currentPath string) entity.Navigation {
	home := profile.Role.HomePath()
	if strings.HasPrefix(currentPath, home) {
		return entity.Navigation{Profile: profile}
	}

	return entity.Navigation{Profile: profile, Redirect: home}
}

// hintNavigation falls back on the last successful login type. The hint is
// never authoritative: it buys the backend one more round trip to catch up
// before the session is written off as orphaned.
func (s *Service) hintNavigation(ctx context.Context, session entity.Session) (entity.Navigation, bool) {
	role, err := s.hints.LastLoginType(ctx, session.Email)
	if err != nil {
		return entity.Navigation{}, false
	}

	return entity.Navigation{Redirect: role.HomePath(), Provisional: true}, true
}
