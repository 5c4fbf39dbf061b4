package context

import (
	"context"

	"github.com/muhammadheryan/clinic-companion/constant"
)

func GetBridgeClient(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.BridgeClientKey)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

func WithBridgeClient(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, constant.BridgeClientKey, name)
}
