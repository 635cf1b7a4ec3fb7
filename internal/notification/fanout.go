package notification

import (
	"context"
	"errors"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

// Fanout delivers each record to every port in order. A failing port does
// not stop the rest; the errors are joined.
type Fanout []ports.NotificationPort

func (f Fanout) Dispatch(ctx context.Context, rec domain.NotificationRecord) error {
	var errs []error
	for _, p := range f {
		if err := p.Dispatch(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
