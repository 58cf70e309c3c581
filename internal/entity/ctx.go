package entity

import (
	"context"
)

type (
	CtxKeyIP      struct{}
	CtxKeySession struct{}
)

func IPFromCtx(ctx context.Context) string {
	ip, ok := ctx.Value(CtxKeyIP{}).(string)
	if !ok {
		return ""
	}

	return ip
}

func SessionFromCtx(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(CtxKeySession{}).(Session)
	return s, ok
}

func CtxWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxKeySession{}, s)
}
