package infrastructure

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
)

// PanicRecoveryInterceptor is a Connect interceptor that catches panics in
// request handlers and converts them to internal-error responses, so one bad
// request cannot take down the plugin endpoint.
type PanicRecoveryInterceptor struct {
	logger pluginDomain.Logger
}

// WrapUnary wraps unary handlers with panic recovery.
func (i *PanicRecoveryInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return connect.UnaryFunc(func(
		ctx context.Context,
		req connect.AnyRequest,
	) (resp connect.AnyResponse, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				i.logger.Error(
					"panic in handler %s. Panic: %v",
					req.Spec().Procedure,
					rec,
				)

				resp = nil
				err = connect.NewError(connect.CodeInternal, errors.New("internal server error"))
			}
		}()

		return next(ctx, req)
	})
}

// WrapStreamingClient passes streaming clients through unchanged; the plugin
// contract has no streaming RPCs.
func (i *PanicRecoveryInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler passes streaming handlers through unchanged; the plugin
// contract has no streaming RPCs.
func (i *PanicRecoveryInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return next
}

// NewPanicRecoveryInterceptor creates a new instance of PanicRecoveryInterceptor.
func NewPanicRecoveryInterceptor(logger pluginDomain.Logger) *PanicRecoveryInterceptor {
	return &PanicRecoveryInterceptor{
		logger: logger,
	}
}
